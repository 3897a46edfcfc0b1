package db

import "github.com/ljylun/InterviewManagementMaster/internal/store"

func notFound(kind, id string) error {
	return &store.NotFoundError{Kind: kind, ID: id}
}
