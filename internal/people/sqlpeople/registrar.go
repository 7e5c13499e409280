package sqlpeople

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/nikmy/txcommand/internal/people"
	"github.com/nikmy/txcommand/pkg/errors"
	"github.com/nikmy/txcommand/pkg/logger"
	"github.com/nikmy/txcommand/pkg/txn"
	"github.com/nikmy/txcommand/pkg/txn/pgtxn"
)

var _ people.Registrar = (*Registrar)(nil)

// Conn is a connection owned by a single registrar call.
type Conn interface {
	pgtxn.Conn
	Close(ctx context.Context) error
}

// Connector opens the connection of one registrar call.
type Connector func(ctx context.Context) (Conn, error)

// Registrar serves concurrent callers. Every call runs its session on a
// connection of its own, closed when the call returns.
type Registrar struct {
	connect  Connector
	sessions *pgtxn.Factory
	log      logger.Logger
}

func NewRegistrar(connect Connector, sessions *pgtxn.Factory, log logger.Logger) *Registrar {
	if log == nil {
		log = logger.NewStub()
	}
	return &Registrar{
		connect:  connect,
		sessions: sessions,
		log:      log.With("sqlpeople"),
	}
}

func (r *Registrar) Register(ctx context.Context, person string, pets []string) (id string, err error) {
	s, conn, err := r.session(ctx)
	if err != nil {
		return "", err
	}
	defer func() {
		err = r.close(ctx, s, conn, err)
		if err != nil {
			id = ""
		}
	}()

	personID, err := txn.ExecuteResult[pgtxn.Conn, pgx.Tx, int64](ctx, s, CreatePerson{Name: person})
	if err != nil {
		return "", err
	}

	err = addPets(ctx, s, personID, pets)
	if err != nil {
		return "", err
	}

	r.log.Debugf("registered person %d with %d pets", personID, len(pets))
	return strconv.FormatInt(personID, 10), nil
}

func (r *Registrar) AddPets(ctx context.Context, ownerID string, pets []string) (err error) {
	personID, err := strconv.ParseInt(ownerID, 10, 64)
	if err != nil {
		return txn.Invalid("ownerID", "must be an integer")
	}

	s, conn, err := r.session(ctx)
	if err != nil {
		return err
	}
	defer func() {
		err = r.close(ctx, s, conn, err)
	}()

	return addPets(ctx, s, personID, pets)
}

func addPets(ctx context.Context, s *pgtxn.Session, personID int64, pets []string) error {
	for _, pet := range pets {
		err := s.Execute(ctx, AddPet{PersonID: personID, Name: pet})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Registrar) session(ctx context.Context) (*pgtxn.Session, Conn, error) {
	conn, err := r.connect(ctx)
	if err != nil {
		return nil, nil, errors.WrapFail(err, "connect")
	}

	s, err := r.sessions.CreateWith(conn)
	if err != nil {
		return nil, nil, errors.Join(errors.WrapFail(err, "create session"), conn.Close(ctx))
	}

	return s, conn, nil
}

// close commits whatever the session still holds and releases its
// connection. A command error is kept as is so that callers can match it.
func (r *Registrar) close(ctx context.Context, s *pgtxn.Session, conn Conn, err error) error {
	closeErr := errors.Join(
		s.Close(ctx),
		errors.WrapFail(conn.Close(context.WithoutCancel(ctx)), "close connection"),
	)
	if closeErr == nil {
		return err
	}

	r.log.Warn(errors.WrapFail(closeErr, "close session "+s.ID()))
	return errors.Join(err, closeErr)
}
