package service

import (
	"context"
	"sort"
	"strings"

	"antrian-truk-be/internal/entity"
	"antrian-truk-be/internal/repository/contract"
	"antrian-truk-be/internal/repository/unitofwork"
	"antrian-truk-be/pkg/events"

	"github.com/google/uuid"
)

// In-memory repositories backing the service tests. They honor the same
// nil-when-absent convention as the GORM implementations.

type fakeQueueEntryRepo struct {
	entries map[uuid.UUID]*entity.QueueEntry
	order   []uuid.UUID

	customers *fakeCustomerRepo
	gates     *fakeGateRepo
}

func newFakeQueueEntryRepo() *fakeQueueEntryRepo {
	return &fakeQueueEntryRepo{entries: make(map[uuid.UUID]*entity.QueueEntry)}
}

// resolve mirrors the Customer and Gate preloads of the GORM implementation.
func (r *fakeQueueEntryRepo) resolve(e *entity.QueueEntry) {
	if r.customers != nil {
		e.Customer = r.customers.customers[e.CustomerId]
	}
	if r.gates != nil && e.GateId != nil {
		e.Gate = r.gates.gates[*e.GateId]
	}
}

func (r *fakeQueueEntryRepo) Create(_ context.Context, entry *entity.QueueEntry) error {
	copied := *entry
	r.entries[entry.Id] = &copied
	r.order = append(r.order, entry.Id)
	return nil
}

func (r *fakeQueueEntryRepo) Update(_ context.Context, entry *entity.QueueEntry) error {
	copied := *entry
	r.entries[entry.Id] = &copied
	return nil
}

func (r *fakeQueueEntryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.QueueEntry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, nil
	}
	copied := *e
	r.resolve(&copied)
	return &copied, nil
}

func (r *fakeQueueEntryRepo) FindByIDWithLogs(ctx context.Context, id uuid.UUID) (*entity.QueueEntry, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeQueueEntryRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.QueueEntry, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeQueueEntryRepo) FindAll(_ context.Context, filter contract.QueueEntryFilter) ([]*entity.QueueEntry, error) {
	var out []*entity.QueueEntry
	for _, id := range r.order {
		e := r.entries[id]
		if filter.From != nil && e.RegisterTime.Before(*filter.From) {
			continue
		}
		if filter.To != nil && e.RegisterTime.After(*filter.To) {
			continue
		}
		if filter.Status != "" && string(e.Status) != filter.Status {
			continue
		}
		if filter.Category != "" && string(e.Category) != filter.Category {
			continue
		}
		if filter.ExcludeFinal && e.Status.IsFinal() {
			continue
		}
		copied := *e
		r.resolve(&copied)
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			hay := copied.DriverName + " " + copied.TruckNumber
			if copied.ContainerNumber != nil {
				hay += " " + *copied.ContainerNumber
			}
			if copied.Customer != nil {
				hay += " " + copied.Customer.Name
			}
			if !strings.Contains(strings.ToLower(hay), needle) {
				continue
			}
		}
		out = append(out, &copied)
	}
	desc := filter.SortDesc
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return out[i].RegisterTime.After(out[j].RegisterTime)
		}
		return out[i].RegisterTime.Before(out[j].RegisterTime)
	})
	return out, nil
}

func (r *fakeQueueEntryRepo) CountByCustomer(_ context.Context, customerId uuid.UUID) (int64, error) {
	var n int64
	for _, e := range r.entries {
		if e.CustomerId == customerId {
			n++
		}
	}
	return n, nil
}

type fakeQueueLogRepo struct {
	logs []*entity.QueueLog
}

func (r *fakeQueueLogRepo) Append(_ context.Context, log *entity.QueueLog) error {
	copied := *log
	r.logs = append(r.logs, &copied)
	return nil
}

func (r *fakeQueueLogRepo) FindByEntryID(_ context.Context, entryId uuid.UUID) ([]*entity.QueueLog, error) {
	var out []*entity.QueueLog
	for _, l := range r.logs {
		if l.EntryId == entryId {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.customers[c.Id] = c
	return nil
}

func (r *fakeCustomerRepo) CreateMany(ctx context.Context, customers []*entity.Customer) error {
	for _, c := range customers {
		if err := r.Create(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *fakeCustomerRepo) FindAll(_ context.Context) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCustomerRepo) FindNamesIn(_ context.Context, names []string) ([]string, error) {
	existing := make(map[string]string)
	for _, c := range r.customers {
		existing[strings.ToLower(c.Name)] = c.Name
	}
	var out []string
	for _, name := range names {
		if stored, ok := existing[strings.ToLower(name)]; ok {
			out = append(out, stored)
		}
	}
	return out, nil
}

type fakeGateRepo struct {
	gates map[uuid.UUID]*entity.Gate
}

func newFakeGateRepo() *fakeGateRepo {
	return &fakeGateRepo{gates: make(map[uuid.UUID]*entity.Gate)}
}

func (r *fakeGateRepo) Create(_ context.Context, g *entity.Gate) error {
	r.gates[g.Id] = g
	return nil
}

func (r *fakeGateRepo) CreateMany(ctx context.Context, gates []*entity.Gate) error {
	for _, g := range gates {
		if err := r.Create(ctx, g); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeGateRepo) Update(_ context.Context, g *entity.Gate) error {
	r.gates[g.Id] = g
	return nil
}

func (r *fakeGateRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.gates, id)
	return nil
}

func (r *fakeGateRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Gate, error) {
	g, ok := r.gates[id]
	if !ok {
		return nil, nil
	}
	return g, nil
}

func (r *fakeGateRepo) FindByKey(_ context.Context, key contract.GateKey) (*entity.Gate, error) {
	for _, g := range r.gates {
		if g.GateNo == key.GateNo && string(g.Warehouse) == key.Warehouse {
			return g, nil
		}
	}
	return nil, nil
}

func (r *fakeGateRepo) FindAll(_ context.Context, filter contract.GateFilter) ([]*entity.Gate, error) {
	var out []*entity.Gate
	for _, g := range r.gates {
		if filter.Warehouse != "" && string(g.Warehouse) != filter.Warehouse {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(g.GateNo), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GateNo < out[j].GateNo })
	return out, nil
}

func (r *fakeGateRepo) ExistingKeys(ctx context.Context, keys []contract.GateKey) (map[contract.GateKey]bool, error) {
	out := make(map[contract.GateKey]bool)
	for _, key := range keys {
		g, _ := r.FindByKey(ctx, key)
		if g != nil {
			out[key] = true
		}
	}
	return out, nil
}

type fakeAdminUserRepo struct {
	users map[uuid.UUID]*entity.AdminUser
}

func newFakeAdminUserRepo() *fakeAdminUserRepo {
	return &fakeAdminUserRepo{users: make(map[uuid.UUID]*entity.AdminUser)}
}

func (r *fakeAdminUserRepo) Create(_ context.Context, u *entity.AdminUser) error {
	copied := *u
	r.users[u.Id] = &copied
	return nil
}

func (r *fakeAdminUserRepo) Update(_ context.Context, u *entity.AdminUser) error {
	copied := *u
	r.users[u.Id] = &copied
	return nil
}

func (r *fakeAdminUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *fakeAdminUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.AdminUser, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *fakeAdminUserRepo) FindByUsername(_ context.Context, username string) (*entity.AdminUser, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeAdminUserRepo) FindAll(_ context.Context, search string) ([]*entity.AdminUser, error) {
	var out []*entity.AdminUser
	for _, u := range r.users {
		if search != "" && !strings.Contains(strings.ToLower(u.Name), strings.ToLower(search)) {
			continue
		}
		copied := *u
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

type fakeUnitOfWork struct {
	queueRepo    *fakeQueueEntryRepo
	logRepo      *fakeQueueLogRepo
	customerRepo *fakeCustomerRepo
	gateRepo     *fakeGateRepo
	adminRepo    *fakeAdminUserRepo

	begun      int
	committed  int
	rolledBack int
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	u := &fakeUnitOfWork{
		queueRepo:    newFakeQueueEntryRepo(),
		logRepo:      &fakeQueueLogRepo{},
		customerRepo: newFakeCustomerRepo(),
		gateRepo:     newFakeGateRepo(),
		adminRepo:    newFakeAdminUserRepo(),
	}
	u.queueRepo.customers = u.customerRepo
	u.queueRepo.gates = u.gateRepo
	return u
}

func (u *fakeUnitOfWork) Begin(context.Context) error { u.begun++; return nil }
func (u *fakeUnitOfWork) Commit() error               { u.committed++; return nil }
func (u *fakeUnitOfWork) Rollback() error             { u.rolledBack++; return nil }

func (u *fakeUnitOfWork) QueueEntryRepository() contract.QueueEntryRepository { return u.queueRepo }
func (u *fakeUnitOfWork) QueueLogRepository() contract.QueueLogRepository    { return u.logRepo }
func (u *fakeUnitOfWork) CustomerRepository() contract.CustomerRepository    { return u.customerRepo }
func (u *fakeUnitOfWork) GateRepository() contract.GateRepository            { return u.gateRepo }
func (u *fakeUnitOfWork) AdminUserRepository() contract.AdminUserRepository  { return u.adminRepo }

// fakeUowFactory hands out the same unit of work every time so tests can
// inspect state across service calls.
type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeUowFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork { return f.uow }

type fakePublisher struct {
	published []string
}

func (p *fakePublisher) Publish(_ context.Context, event events.Event) error {
	p.published = append(p.published, event.EventType())
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }
