// Package weaver builds GraphQL query, mutation and subscription documents
// from a tree of immutable nodes.
//
// Nodes are values: every modifier returns a copy with one field changed, and
// children are composed eagerly when their parent is constructed.
//
//	query := weaver.NewQuery(
//		weaver.NewObject("post",
//			weaver.NewField("id"),
//			weaver.NewField("title"),
//		).Alias("newPost").Argument("id", 1),
//	)
//	query.String() // query { newPost: post(id: 1) { id title } }
package weaver
