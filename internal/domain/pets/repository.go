package pets

import "context"

// Repository abstracts pet persistence.
type Repository interface {
	List(ctx context.Context) ([]Pet, error)
	Get(ctx context.Context, id string) (Pet, bool, error)
	Create(ctx context.Context, pet Pet) (Pet, error)
	Update(ctx context.Context, pet Pet) (Pet, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// PhotoStorage stores pet pictures outside the document store.
type PhotoStorage interface {
	Put(ctx context.Context, key string, data []byte, mimeType string) (StoredPhoto, error)
}
