package app

import (
	"context"
	"sync"

	"noted/internal/config"
	"noted/internal/types"
)

type fakeNotesAPI struct {
	mu sync.Mutex

	notes       []types.Note
	searchHits  []types.Note
	listErr     error
	searchErr   error
	createErr   error
	updateErr   error
	deleteErr   error
	listCalls   int
	searchCalls int
	createCalls int
	updateCalls int
	deleteCalls int
}

func (f *fakeNotesAPI) ListNotes(ctx context.Context) ([]types.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	return f.notes, f.listErr
}

func (f *fakeNotesAPI) SearchNotes(ctx context.Context, query string) ([]types.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchCalls++
	return f.searchHits, f.searchErr
}

func (f *fakeNotesAPI) CreateNote(ctx context.Context, title, content string) (*types.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &types.Note{ID: "created", Title: title, Content: content}, nil
}

func (f *fakeNotesAPI) UpdateNote(ctx context.Context, id, title, content string) (*types.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &types.Note{ID: id, Title: title, Content: content}, nil
}

func (f *fakeNotesAPI) DeleteNote(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	return f.deleteErr
}

func newTestModel(api NotesAPI) *Model {
	model := NewModel(api, config.Default())
	return &model
}
