package mongopeople

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nikmy/txcommand/internal/people"
	"github.com/nikmy/txcommand/pkg/errors"
	"github.com/nikmy/txcommand/pkg/logger"
	"github.com/nikmy/txcommand/pkg/txn"
	"github.com/nikmy/txcommand/pkg/txn/mongotxn"
)

var (
	_ people.Registrar = (*Registrar)(nil)
	_ people.PetLister = (*Registrar)(nil)
)

type Registrar struct {
	sessions *mongotxn.Factory
	database string
	log      logger.Logger
}

func NewRegistrar(sessions *mongotxn.Factory, database string, log logger.Logger) *Registrar {
	if log == nil {
		log = logger.NewStub()
	}
	return &Registrar{
		sessions: sessions,
		database: database,
		log:      log.With("mongopeople"),
	}
}

func (r *Registrar) Register(ctx context.Context, person string, pets []string) (id string, err error) {
	s, err := r.sessions.Create()
	if err != nil {
		return "", errors.WrapFail(err, "create session")
	}
	defer func() {
		err = r.close(ctx, s, err)
		if err != nil {
			id = ""
		}
	}()

	id, err = txn.ExecuteResult[mongotxn.Client, mongo.Session, string](ctx, s, CreatePerson{
		Database: r.database,
		Name:     person,
	})
	if err != nil {
		return "", err
	}

	err = r.addPets(ctx, s, id, pets)
	if err != nil {
		return "", err
	}

	r.log.Debugf("registered person %s with %d pets", id, len(pets))
	return id, nil
}

func (r *Registrar) AddPets(ctx context.Context, ownerID string, pets []string) (err error) {
	s, err := r.sessions.Create()
	if err != nil {
		return errors.WrapFail(err, "create session")
	}
	defer func() {
		err = r.close(ctx, s, err)
	}()

	return r.addPets(ctx, s, ownerID, pets)
}

func (r *Registrar) Pets(ctx context.Context, ownerID string) (pets []people.Pet, err error) {
	s, err := r.sessions.Create()
	if err != nil {
		return nil, errors.WrapFail(err, "create session")
	}
	defer func() {
		err = r.close(ctx, s, err)
	}()

	return txn.ExecuteResult[mongotxn.Client, mongo.Session, []people.Pet](ctx, s, ListPets{
		Database: r.database,
		OwnerID:  ownerID,
	})
}

func (r *Registrar) addPets(ctx context.Context, s *mongotxn.Session, ownerID string, pets []string) error {
	for _, pet := range pets {
		err := s.Execute(ctx, CreatePet{
			Database: r.database,
			Name:     pet,
			OwnerID:  ownerID,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Registrar) close(ctx context.Context, s *mongotxn.Session, err error) error {
	closeErr := s.Close(ctx)
	if closeErr == nil {
		return err
	}

	r.log.Warn(errors.WrapFail(closeErr, "close session "+s.ID()))
	return errors.Join(err, closeErr)
}
