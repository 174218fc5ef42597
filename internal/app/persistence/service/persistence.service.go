package persistence_service

import (
	"context"
	"log/slog"

	"github.com/init-pkg/excel-users/domain/app"
)

const phoneNumberColumn = "phone number"

type PersistenceService struct {
	repo app.UserRepository
	log  *slog.Logger
}

var _ app.PersistenceGateway = &PersistenceService{}

func New(repo app.UserRepository, log *slog.Logger) *PersistenceService {
	return &PersistenceService{repo, log}
}

// PersistAll inserts rows strictly in order. The first failing insert stops
// the loop; rows already written stay written.
func (this *PersistenceService) PersistAll(ctx context.Context, batch app.Batch) (int, error) {
	for i, row := range batch {
		user := ToUser(row)
		if err := this.repo.Create(ctx, &user); err != nil {
			this.log.Error("persist user failed", "index", i, "nid", user.NID, "error", err)
			return i, &app.PersistenceError{Index: i, NID: user.NID, Err: err}
		}
	}

	this.log.Info("users persisted", "count", len(batch))
	return len(batch), nil
}

// ToUser maps a staged row onto the users table. The phone column is
// renamed and the validation errors are not carried over.
func ToUser(row app.AnnotatedRow) app.User {
	text := func(key string) string {
		if v, ok := row.Row[key]; ok {
			return v.String()
		}
		return ""
	}

	return app.User{
		Names:       text("Names"),
		NID:         text("NID"),
		PhoneNumber: text(phoneNumberColumn),
		Gender:      text("gender"),
		Email:       text("email"),
	}
}
