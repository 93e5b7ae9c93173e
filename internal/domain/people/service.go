package people

import (
	"context"
	"sort"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"people-directory/internal/platform/apperr"
	"people-directory/internal/platform/logger"
	"people-directory/internal/platform/metrics"
	"people-directory/internal/ports/moderation"
	"people-directory/internal/ports/storage"
)

type Options struct {
	// PlainModeration usa el tier sin reintentos al crear personas.
	PlainModeration bool

	Logger  logger.Logger
	Metrics *metrics.Metrics
}

// Service orquesta moderación + storage. No guarda estado propio.
type Service struct {
	store   Storer
	censor  moderation.Censorious
	plain   bool
	log     logger.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

func NewService(store Storer, censor moderation.Censorious, opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		store:   store,
		censor:  censor,
		plain:   opts.PlainModeration,
		log:     log.With(map[string]any{"component": "people.service"}),
		metrics: opts.Metrics,
		tracer:  otel.Tracer("people-directory/internal/domain/people"),
	}
}

func (s *Service) GetPeople(ctx context.Context, p Pagination) ([]Person, error) {
	const op = "people.GetPeople"
	ctx, span := s.tracer.Start(ctx, op)
	defer span.End()

	s.log.Debug("start querying people", map[string]any{"offset": p.Offset, "limit": limitField(p.Limit)})

	res, err := s.store.GetPeople(ctx, p.Limit, p.Offset)
	if err != nil {
		return nil, s.fail(span, op, apperr.KindGetPeople, err, nil)
	}

	// el backend no garantiza orden
	sort.SliceStable(res, func(i, j int) bool { return res[i].Less(res[j]) })

	span.SetAttributes(attribute.Int("people.count", len(res)))
	return res, nil
}

func (s *Service) GetPerson(ctx context.Context, id string) (Person, error) {
	const op = "people.GetPerson"
	ctx, span := s.tracer.Start(ctx, op, trace.WithAttributes(attribute.String("person.id", id)))
	defer span.End()

	p, err := s.store.GetPerson(ctx, id)
	if err != nil {
		return Person{}, s.fail(span, op, s.notFoundOr(err, apperr.KindGetPerson), err, map[string]any{"person_id": id})
	}
	return p, nil
}

func (s *Service) UpdatePerson(ctx context.Context, p Person) (Person, error) {
	const op = "people.UpdatePerson"
	ctx, span := s.tracer.Start(ctx, op, trace.WithAttributes(attribute.String("person.id", p.ID)))
	defer span.End()

	if strings.TrimSpace(p.ID) == "" || !(NewPerson{FirstName: p.FirstName, LastName: p.LastName}).valid() {
		return Person{}, apperr.New(apperr.KindInvalidInput, "id, first_name and last_name are required")
	}

	s.log.Debug("start updating person", map[string]any{"person_id": p.ID})

	out, err := s.store.UpdatePerson(ctx, p)
	if err != nil {
		return Person{}, s.fail(span, op, s.notFoundOr(err, apperr.KindUpdatePerson), err, map[string]any{"person_id": p.ID})
	}
	return out, nil
}

// AddPerson modera nombre y apellido en paralelo y solo persiste si ambos pasan.
// Si cualquiera falla, el otro se cancela y no hay escritura.
func (s *Service) AddPerson(ctx context.Context, in NewPerson) (Person, error) {
	const op = "people.AddPerson"
	ctx, span := s.tracer.Start(ctx, op)
	defer span.End()

	if !in.valid() {
		return Person{}, apperr.New(apperr.KindInvalidInput, "first_name and last_name are required")
	}

	s.log.Debug("checking bad words", map[string]any{"plain": s.plain})

	censor := s.censor.CensorWithBackoff
	if s.plain {
		censor = s.censor.Censor
	}

	var firstName, lastName string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := censor(gctx, in.FirstName)
		firstName = out
		return err
	})
	g.Go(func() error {
		out, err := censor(gctx, in.LastName)
		lastName = out
		return err
	})
	if err := g.Wait(); err != nil {
		return Person{}, s.fail(span, op, apperr.KindValidateBadWords, err, nil)
	}

	person := NewPerson{FirstName: firstName, LastName: lastName}.ToPerson()
	span.SetAttributes(attribute.String("person.id", person.ID))

	saved, err := s.store.AddPerson(ctx, person)
	if err != nil {
		return Person{}, s.fail(span, op, apperr.KindCreatePerson, err, map[string]any{"person_id": person.ID})
	}

	s.metrics.IncPeopleCreated()
	s.log.Info("person created", map[string]any{"person_id": saved.ID})
	return saved, nil
}

func (s *Service) DeletePerson(ctx context.Context, id string) (bool, error) {
	const op = "people.DeletePerson"
	ctx, span := s.tracer.Start(ctx, op, trace.WithAttributes(attribute.String("person.id", id)))
	defer span.End()

	s.log.Debug("start deleting person", map[string]any{"person_id": id})

	ok, err := s.store.DeletePerson(ctx, id)
	if err != nil {
		return false, s.fail(span, op, s.notFoundOr(err, apperr.KindDeletePerson), err, map[string]any{"person_id": id})
	}
	if !ok {
		return false, s.fail(span, op, apperr.KindPersonNotFound, storage.NotFound(op), map[string]any{"person_id": id})
	}
	return true, nil
}

// AddPet exige que el dueño exista; si no, PersonNotFound.
func (s *Service) AddPet(ctx context.Context, in NewPet) (Pet, error) {
	const op = "people.AddPet"
	ctx, span := s.tracer.Start(ctx, op, trace.WithAttributes(attribute.String("person.id", in.PersonID)))
	defer span.End()

	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.PersonID) == "" {
		return Pet{}, apperr.New(apperr.KindInvalidInput, "pet name and owner are required")
	}

	pet := in.ToPet()
	saved, err := s.store.AddPet(ctx, pet)
	if err != nil {
		return Pet{}, s.fail(span, op, s.notFoundOr(err, apperr.KindAddPet), err, map[string]any{"person_id": in.PersonID})
	}

	s.log.Info("pet added", map[string]any{"person_id": saved.PersonID, "pet_id": saved.ID})
	return saved, nil
}

func (s *Service) notFoundOr(err error, kind apperr.Kind) apperr.Kind {
	if storage.IsNotFound(err) {
		return apperr.KindPersonNotFound
	}
	return kind
}

// fail loguea la causa y devuelve el kind de la operación; la causa queda en la cadena.
func (s *Service) fail(span trace.Span, op string, kind apperr.Kind, cause error, fields map[string]any) error {
	f := map[string]any{"op": op, "kind": kind.String(), "error": cause}
	for k, v := range fields {
		f[k] = v
	}

	if kind == apperr.KindPersonNotFound {
		s.log.Debug("person not found", f)
	} else {
		s.log.Error(kind.String(), f)
	}

	span.RecordError(cause)
	span.SetStatus(codes.Error, kind.String())
	return apperr.Wrap(kind, op, cause)
}
