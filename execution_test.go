package weaver_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/graph-gophers/graphql-go"

	"github.com/llehouerou/go-graphql-weaver"
)

const blogSchema = `
schema {
	query: Query
	mutation: Mutation
}
enum Category {
	ART
	MUSIC
	TECHNOLOGY
}
type Query {
	post(id: ID!): Post
	posts(category: Category): [Post!]!
}
type Mutation {
	updatePost(id: ID!, title: String!): Post
}
type Post {
	id: ID!
	title: String!
	category: Category!
	author: Author!
	comments(first: Int!, after: String): CommentConnection!
}
type Author {
	id: ID!
	name: String!
}
type CommentConnection {
	cursor: String
	edges: [CommentEdge!]!
	pageInfo: PageInfo!
}
type CommentEdge {
	node: Comment!
}
type Comment {
	id: ID!
	content: String!
}
type PageInfo {
	endCursor: String
	hasNextPage: Boolean!
}
`

type blogResolver struct{}

func (blogResolver) Post(args struct{ ID graphql.ID }) *postResolver {
	return &postResolver{id: args.ID, title: "Hello", category: "TECHNOLOGY"}
}

func (blogResolver) Posts(args struct{ Category *string }) []*postResolver {
	posts := []*postResolver{
		{id: "1", title: "Hello", category: "TECHNOLOGY"},
		{id: "2", title: "Jazz", category: "MUSIC"},
	}
	if args.Category == nil {
		return posts
	}
	var filtered []*postResolver
	for _, p := range posts {
		if p.category == *args.Category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func (blogResolver) UpdatePost(args struct {
	ID    graphql.ID
	Title string
}) *postResolver {
	return &postResolver{id: args.ID, title: args.Title, category: "ART"}
}

type postResolver struct {
	id       graphql.ID
	title    string
	category string
}

func (p *postResolver) ID() graphql.ID {
	return p.id
}

func (p *postResolver) Title() string {
	return p.title
}

func (p *postResolver) Category() string {
	return p.category
}

func (p *postResolver) Author() *authorResolver {
	return &authorResolver{}
}

func (p *postResolver) Comments(args struct {
	First int32
	After *string
}) *connectionResolver {
	var edges []*edgeResolver
	for i := int32(0); i < args.First; i++ {
		edges = append(edges, &edgeResolver{id: graphql.ID(string(rune('a' + i))), content: "nice"})
	}
	return &connectionResolver{edges: edges, after: args.After}
}

type authorResolver struct{}

func (authorResolver) ID() graphql.ID {
	return "7"
}

func (authorResolver) Name() string {
	return "John"
}

type connectionResolver struct {
	edges []*edgeResolver
	after *string
}

func (c *connectionResolver) Cursor() *string {
	return c.after
}

func (c *connectionResolver) Edges() []*edgeResolver {
	return c.edges
}

func (c *connectionResolver) PageInfo() *pageInfoResolver {
	return &pageInfoResolver{}
}

type edgeResolver struct {
	id      graphql.ID
	content string
}

func (e *edgeResolver) Node() *edgeResolver {
	return e
}

func (e *edgeResolver) ID() graphql.ID {
	return e.id
}

func (e *edgeResolver) Content() string {
	return e.content
}

type pageInfoResolver struct{}

func (pageInfoResolver) EndCursor() *string {
	cursor := "b"
	return &cursor
}

func (pageInfoResolver) HasNextPage() bool {
	return true
}

type postCategory string

func (c postCategory) GetGraphQLEnum() string {
	return string(c)
}

type postID string

func (postID) GetGraphQLType() string {
	return "ID"
}

// TestExecute runs generated documents against an in-memory schema.
func TestExecute(t *testing.T) {
	schema := graphql.MustParseSchema(blogSchema, &blogResolver{})
	authorFields := weaver.NewFragmentSpec("authorFields", "Author")

	tests := []struct {
		name      string
		op        weaver.Operation
		variables map[string]any
		want      string
	}{
		{
			name: "alias, fragment and typename",
			op: weaver.NewQuery(
				weaver.NewObject("post",
					weaver.NewField("id"),
					weaver.NewField("title"),
					weaver.NewObject("author", authorFields.Reference()),
					weaver.Typename(),
					weaver.NewField("category").Skip(true),
				).Alias("newPost").Argument("id", "1"),
			).Fragments(weaver.NewFragment(authorFields, weaver.NewField("id"), weaver.NewField("name"))),
			want: `{"newPost":{"id":"1","title":"Hello","author":{"id":"7","name":"John"},"__typename":"Post"}}`,
		},
		{
			name: "enum argument",
			op: weaver.NewQuery(
				weaver.NewObject("posts", weaver.NewField("id"), weaver.NewField("category")).
					Argument("category", postCategory("music")),
			),
			want: `{"posts":[{"id":"2","category":"MUSIC"}]}`,
		},
		{
			name: "cursor pagination",
			op: weaver.NewQuery(
				weaver.NewObject("post",
					weaver.NewObject("comments", weaver.NewField("id"), weaver.NewField("content")).
						SliceAfter(2, "x").
						Pagination(weaver.CursorPagination).
						PageInfo("pageInfo", "endCursor", "hasNextPage"),
				).Argument("id", "1"),
			),
			want: `{"post":{"comments":{"cursor":"x","edges":[{"node":{"id":"a","content":"nice"}},{"node":{"id":"b","content":"nice"}}],"pageInfo":{"endCursor":"b","hasNextPage":true}}}}`,
		},
		{
			name: "inline fragment",
			op: weaver.NewQuery(
				weaver.NewObject("post",
					weaver.NewInlineFragment("Post", weaver.NewField("title")),
				).Argument("id", "3"),
			),
			want: `{"post":{"title":"Hello"}}`,
		},
		{
			name: "mutation with variables",
			op: weaver.NewMutation(
				weaver.NewObject("updatePost", weaver.Keys("id", "title", "category")).
					Argument("id", weaver.Var("id")).
					Argument("title", weaver.Var("title")),
			).Named("UpdatePost").VariablesOf(map[string]any{"id": postID("4"), "title": "Updated Title"}),
			variables: map[string]any{"id": "4", "title": "Updated Title"},
			want:      `{"updatePost":{"id":"4","title":"Updated Title","category":"ART"}}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			document, err := tc.op.Build()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			req, err := tc.op.Request(tc.variables)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			resp := schema.Exec(context.Background(), document, req.OperationName, tc.variables)
			if len(resp.Errors) > 0 {
				t.Fatalf("executing %q: %v", document, resp.Errors)
			}

			var got, want any
			if err := json.Unmarshal(resp.Data, &got); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}
			if err := json.Unmarshal([]byte(tc.want), &want); err != nil {
				t.Fatalf("failed to unmarshal expected data: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("response mismatch for %q (-want +got):\n%s", document, diff)
			}
		})
	}
}
