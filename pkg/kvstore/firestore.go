package kvstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Firestore keeps one document per key: docId = key, fields value/updatedAt.
type Firestore struct {
	Client     *firestore.Client
	collection string
}

type kvDoc struct {
	Value     string    `firestore:"value"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

// OpenFirestore creates a client. An empty credentialsFile uses application
// default credentials.
func OpenFirestore(ctx context.Context, projectID, collection, credentialsFile string) (*Firestore, error) {
	if strings.TrimSpace(projectID) == "" {
		return nil, errors.New("kvstore: firestore project is empty")
	}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("kvstore: firestore client: %w", err)
	}
	return NewFirestore(client, collection), nil
}

func NewFirestore(client *firestore.Client, collection string) *Firestore {
	if collection == "" {
		collection = "device_storage"
	}
	return &Firestore{Client: client, collection: collection}
}

func (f *Firestore) doc(key string) *firestore.DocumentRef {
	return f.Client.Collection(f.collection).Doc(key)
}

func (f *Firestore) Get(ctx context.Context, key string) (string, error) {
	snap, err := f.doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", ErrNotFound
		}
		return "", err
	}

	var d kvDoc
	if err := snap.DataTo(&d); err != nil {
		return "", fmt.Errorf("kvstore: decode %s: %w", key, err)
	}
	return d.Value, nil
}

func (f *Firestore) Set(ctx context.Context, key, value string) error {
	_, err := f.doc(key).Set(ctx, kvDoc{Value: value, UpdatedAt: time.Now().UTC()})
	return err
}

func (f *Firestore) Remove(ctx context.Context, key string) error {
	_, err := f.doc(key).Delete(ctx)
	if status.Code(err) == codes.NotFound {
		return nil
	}
	return err
}

func (f *Firestore) Close() error {
	if f == nil || f.Client == nil {
		return nil
	}
	return f.Client.Close()
}
