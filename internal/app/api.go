package app

import (
	"context"

	"noted/internal/client"
	"noted/internal/types"
)

type NotesAPI interface {
	ListNotes(ctx context.Context) ([]types.Note, error)
	SearchNotes(ctx context.Context, query string) ([]types.Note, error)
	CreateNote(ctx context.Context, title, content string) (*types.Note, error)
	UpdateNote(ctx context.Context, id, title, content string) (*types.Note, error)
	DeleteNote(ctx context.Context, id string) error
}

type ClientAPI struct {
	client *client.Client
}

func NewClientAPI(client *client.Client) *ClientAPI {
	return &ClientAPI{client: client}
}

func (a *ClientAPI) ListNotes(ctx context.Context) ([]types.Note, error) {
	return a.client.ListNotes(ctx)
}

func (a *ClientAPI) SearchNotes(ctx context.Context, query string) ([]types.Note, error) {
	return a.client.SearchNotes(ctx, query)
}

func (a *ClientAPI) CreateNote(ctx context.Context, title, content string) (*types.Note, error) {
	return a.client.CreateNote(ctx, title, content)
}

func (a *ClientAPI) UpdateNote(ctx context.Context, id, title, content string) (*types.Note, error) {
	return a.client.UpdateNote(ctx, id, title, content)
}

func (a *ClientAPI) DeleteNote(ctx context.Context, id string) error {
	return a.client.DeleteNote(ctx, id)
}
