package weaver

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestOperation_Request(t *testing.T) {
	op := NewQuery(
		NewObject("post", NewField("id")).Argument("id", Var("id")),
	).Named("GetPost").Variable("id", "ID!")

	t.Run("builds payload with query and variables", func(t *testing.T) {
		req, err := op.Request(map[string]any{"id": "123"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		reqBody, err := req.Body()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var body struct {
			Query         string         `json:"query"`
			OperationName string         `json:"operationName"`
			Variables     map[string]any `json:"variables,omitempty"`
		}
		if err := json.Unmarshal(reqBody, &body); err != nil {
			t.Fatalf("failed to unmarshal request body: %v", err)
		}

		if want := "query GetPost($id: ID!) { post(id: $id) { id } }"; body.Query != want {
			t.Errorf("expected query %q, got %q", want, body.Query)
		}
		if body.OperationName != "GetPost" {
			t.Errorf("expected operation name GetPost, got %q", body.OperationName)
		}
		if body.Variables["id"] != "123" {
			t.Errorf("expected variables[id]=123, got %v", body.Variables["id"])
		}
	})

	t.Run("builds payload without variables", func(t *testing.T) {
		req, err := NewQuery(NewField("id")).Request(map[string]any{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		reqBody, err := req.Body()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var body map[string]any
		if err := json.Unmarshal(reqBody, &body); err != nil {
			t.Fatalf("failed to unmarshal request body: %v", err)
		}
		if _, ok := body["variables"]; ok {
			t.Errorf("expected no variables, got %v", body["variables"])
		}
		if _, ok := body["operationName"]; ok {
			t.Errorf("expected no operation name, got %v", body["operationName"])
		}
	})

	t.Run("fails on invalid operation", func(t *testing.T) {
		_, err := NewQuery(NewField("id").Include(false)).Request(nil)
		if !errors.Is(err, ErrEmptySelection) {
			t.Errorf("got error %v, want %v", err, ErrEmptySelection)
		}
	})
}

func TestNewSubscribeMessage(t *testing.T) {
	req, err := NewSubscription(NewObject("commentAdded", NewField("id"))).Request(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := NewSubscribeMessage(req)
	second := NewSubscribeMessage(req)

	if _, err := uuid.Parse(first.ID); err != nil {
		t.Errorf("expected a uuid id, got %q: %v", first.ID, err)
	}
	if first.ID == second.ID {
		t.Errorf("expected distinct ids, got %q twice", first.ID)
	}

	msgBody, err := first.Body()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var msg struct {
		ID      string `json:"id"`
		Type    string `json:"type"`
		Payload struct {
			Query string `json:"query"`
		} `json:"payload"`
	}
	if err := json.Unmarshal(msgBody, &msg); err != nil {
		t.Fatalf("failed to unmarshal message: %v", err)
	}

	if msg.Type != SubscribeMessageType {
		t.Errorf("expected type %q, got %q", SubscribeMessageType, msg.Type)
	}
	if msg.ID != first.ID {
		t.Errorf("expected id %q, got %q", first.ID, msg.ID)
	}
	if want := "subscription { commentAdded { id } }"; msg.Payload.Query != want {
		t.Errorf("expected query %q, got %q", want, msg.Payload.Query)
	}
}
