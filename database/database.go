package database

type Database struct {
	store          *Store
	projectRepo    *ProjectRepo
	credentialRepo *CredentialRepo
}

// New initializes a Database whose repositories share one store backend
func New(backend Backend) Database {
	store := NewStore(backend)
	return Database{
		store:          store,
		projectRepo:    NewProjectRepo(store),
		credentialRepo: NewCredentialRepo(store),
	}
}

// NewInMemory is a Database on the memory backend.
func NewInMemory() (Database, error) {
	backend, err := NewMemoryBackend()
	if err != nil {
		return Database{}, err
	}
	return New(backend), nil
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) CredentialRepo() *CredentialRepo {
	return d.credentialRepo
}

func (d Database) Close() error {
	return d.store.Close()
}
