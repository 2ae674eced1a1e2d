package database

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"zipper/config"
)

// Open builds the Firestore client backing the product, like and order
// collections. Credentials resolve through the ambient service account
// unless a credentials file is configured.
func Open(ctx context.Context, cfg config.Firestore) (*firestore.Client, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to firestore project[%s]: %w", cfg.ProjectID, err)
	}

	return client, nil
}

// IsNotFound reports whether err is Firestore's missing-document error.
// Firestore surfaces it as a gRPC status code.
func IsNotFound(err error) bool {
	return err != nil && status.Code(err) == codes.NotFound
}
