// Package memory implementa los puertos de persistencia sobre mapas en
// memoria, con un mutex global por Store. Se usa en tests y como backend de
// desarrollo (STORE_DRIVER=memory); el TxRunner serializa las secciones
// críticas tomando ese mismo mutex, igual que los locks de fila en PostgreSQL.
package memory

import (
	"context"
	"sync"

	"github.com/zelcon/ops-api/internal/application/warehouse"
	"github.com/zelcon/ops-api/internal/domain/entity"
	"github.com/zelcon/ops-api/internal/domain/repository"
)

// Store contenedor de todas las colecciones en memoria.
type Store struct {
	mu sync.Mutex

	companies map[string]*entity.Company
	users     map[string]*entity.User
	items     map[string]*entity.InventoryItem
	requests  map[string]*entity.WarehouseRequest
	docs      map[string]*entity.SSTDocument
	incidents map[string]*entity.IncidentReport

	// Orden de inserción por colección, para listados estables.
	itemOrder     []string
	requestOrder  []string
	docOrder      []string
	incidentOrder []string
	userOrder     []string
	companyOrder  []string
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		companies: map[string]*entity.Company{},
		users:     map[string]*entity.User{},
		items:     map[string]*entity.InventoryItem{},
		requests:  map[string]*entity.WarehouseRequest{},
		docs:      map[string]*entity.SSTDocument{},
		incidents: map[string]*entity.IncidentReport{},
	}
}

// Los repos delegan en el Store; locked indica si el caller ya tiene el mutex
// (repos atados a la "transacción" del TxRunner).

// Items devuelve el repositorio de artículos.
func (s *Store) Items() repository.InventoryItemRepository { return &itemRepo{s: s} }

// Requests devuelve el repositorio de solicitudes.
func (s *Store) Requests() repository.WarehouseRequestRepository { return &requestRepo{s: s} }

// Docs devuelve el repositorio de documentos SST.
func (s *Store) Docs() repository.SSTDocumentRepository { return &docRepo{s: s} }

// Incidents devuelve el repositorio de incidentes.
func (s *Store) Incidents() repository.IncidentRepository { return &incidentRepo{s: s} }

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() repository.UserRepository { return &userRepo{s: s} }

// Companies devuelve el repositorio de empresas.
func (s *Store) Companies() repository.CompanyRepository { return &companyRepo{s: s} }

// TxRunner devuelve un runner que serializa las secciones críticas con el
// mutex del store.
func (s *Store) TxRunner() warehouse.TxRunner { return &txRunner{s: s} }

type txRunner struct {
	s *Store
}

// Run toma el lock del store y ejecuta fn con repos que no vuelven a tomarlo.
// No hay rollback: los casos de uso escriben al final de sus validaciones, de
// modo que un error previo no deja escrituras parciales visibles.
func (r *txRunner) Run(ctx context.Context, fn func(
	items repository.InventoryItemRepository,
	requests repository.WarehouseRequestRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return fn(&itemRepo{s: r.s, locked: true}, &requestRepo{s: r.s, locked: true})
}

func (s *Store) lock(locked bool) func() {
	if locked {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// ---- artículos ----

type itemRepo struct {
	s      *Store
	locked bool
}

func (r *itemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	defer r.s.lock(r.locked)()
	item, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

// GetForUpdate en memoria equivale a GetByID: el lock del TxRunner ya
// serializa la sección crítica completa.
func (r *itemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) {
	return r.GetByID(id)
}

func (r *itemRepo) GetByCompanyAndSKU(companyID, sku string) (*entity.InventoryItem, error) {
	defer r.s.lock(r.locked)()
	for _, id := range r.s.itemOrder {
		item := r.s.items[id]
		if item.CompanyID == companyID && item.SKU == sku {
			cp := *item
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *itemRepo) ListByCompany(companyID string) ([]*entity.InventoryItem, error) {
	defer r.s.lock(r.locked)()
	var list []*entity.InventoryItem
	for _, id := range r.s.itemOrder {
		item := r.s.items[id]
		if item.CompanyID == companyID {
			cp := *item
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *itemRepo) Create(item *entity.InventoryItem) error {
	defer r.s.lock(r.locked)()
	cp := *item
	r.s.items[item.ID] = &cp
	r.s.itemOrder = append(r.s.itemOrder, item.ID)
	return nil
}

func (r *itemRepo) Update(item *entity.InventoryItem) error {
	defer r.s.lock(r.locked)()
	if stored, ok := r.s.items[item.ID]; ok {
		stock := stored.Stock
		cp := *item
		cp.Stock = stock // el stock solo se escribe vía UpdateStock
		r.s.items[item.ID] = &cp
	}
	return nil
}

func (r *itemRepo) UpdateStock(id string, stock int) error {
	defer r.s.lock(r.locked)()
	if stored, ok := r.s.items[id]; ok {
		stored.Stock = stock
	}
	return nil
}

// ---- solicitudes ----

type requestRepo struct {
	s      *Store
	locked bool
}

func (r *requestRepo) GetByID(id string) (*entity.WarehouseRequest, error) {
	defer r.s.lock(r.locked)()
	req, ok := r.s.requests[id]
	if !ok {
		return nil, nil
	}
	cp := *req
	return &cp, nil
}

func (r *requestRepo) GetForUpdate(id string) (*entity.WarehouseRequest, error) {
	return r.GetByID(id)
}

func (r *requestRepo) ListByCompany(companyID string) ([]*entity.WarehouseRequest, error) {
	defer r.s.lock(r.locked)()
	var list []*entity.WarehouseRequest
	for _, id := range r.s.requestOrder {
		req := r.s.requests[id]
		if req.CompanyID == companyID {
			cp := *req
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *requestRepo) ListByUser(companyID, userID string) ([]*entity.WarehouseRequest, error) {
	defer r.s.lock(r.locked)()
	var list []*entity.WarehouseRequest
	for _, id := range r.s.requestOrder {
		req := r.s.requests[id]
		if req.CompanyID == companyID && req.UserID == userID {
			cp := *req
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *requestRepo) HasPending(userID, itemID string) (bool, error) {
	defer r.s.lock(r.locked)()
	for _, req := range r.s.requests {
		if req.UserID == userID && req.ItemID == itemID && req.Status == entity.RequestStatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (r *requestRepo) Create(req *entity.WarehouseRequest) error {
	defer r.s.lock(r.locked)()
	cp := *req
	r.s.requests[req.ID] = &cp
	r.s.requestOrder = append(r.s.requestOrder, req.ID)
	return nil
}

func (r *requestRepo) Update(req *entity.WarehouseRequest) error {
	defer r.s.lock(r.locked)()
	if _, ok := r.s.requests[req.ID]; ok {
		cp := *req
		r.s.requests[req.ID] = &cp
	}
	return nil
}

// ---- documentos SST ----

type docRepo struct {
	s      *Store
	locked bool
}

func (r *docRepo) GetByID(id string) (*entity.SSTDocument, error) {
	defer r.s.lock(r.locked)()
	doc, ok := r.s.docs[id]
	if !ok {
		return nil, nil
	}
	cp := *doc
	return &cp, nil
}

func (r *docRepo) ListByCompany(companyID string) ([]*entity.SSTDocument, error) {
	defer r.s.lock(r.locked)()
	var list []*entity.SSTDocument
	for _, id := range r.s.docOrder {
		doc := r.s.docs[id]
		if doc.CompanyID == companyID {
			cp := *doc
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *docRepo) Create(doc *entity.SSTDocument) error {
	defer r.s.lock(r.locked)()
	cp := *doc
	r.s.docs[doc.ID] = &cp
	r.s.docOrder = append(r.s.docOrder, doc.ID)
	return nil
}

func (r *docRepo) Update(doc *entity.SSTDocument) error {
	defer r.s.lock(r.locked)()
	if _, ok := r.s.docs[doc.ID]; ok {
		cp := *doc
		r.s.docs[doc.ID] = &cp
	}
	return nil
}

func (r *docRepo) Delete(id string) error {
	defer r.s.lock(r.locked)()
	delete(r.s.docs, id)
	for i, docID := range r.s.docOrder {
		if docID == id {
			r.s.docOrder = append(r.s.docOrder[:i], r.s.docOrder[i+1:]...)
			break
		}
	}
	return nil
}

// ---- incidentes ----

type incidentRepo struct {
	s      *Store
	locked bool
}

func (r *incidentRepo) GetByID(id string) (*entity.IncidentReport, error) {
	defer r.s.lock(r.locked)()
	incident, ok := r.s.incidents[id]
	if !ok {
		return nil, nil
	}
	cp := *incident
	return &cp, nil
}

func (r *incidentRepo) ListByCompany(companyID string) ([]*entity.IncidentReport, error) {
	defer r.s.lock(r.locked)()
	var list []*entity.IncidentReport
	for _, id := range r.s.incidentOrder {
		incident := r.s.incidents[id]
		if incident.CompanyID == companyID {
			cp := *incident
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *incidentRepo) Create(incident *entity.IncidentReport) error {
	defer r.s.lock(r.locked)()
	cp := *incident
	r.s.incidents[incident.ID] = &cp
	r.s.incidentOrder = append(r.s.incidentOrder, incident.ID)
	return nil
}

func (r *incidentRepo) Update(incident *entity.IncidentReport) error {
	defer r.s.lock(r.locked)()
	if _, ok := r.s.incidents[incident.ID]; ok {
		cp := *incident
		r.s.incidents[incident.ID] = &cp
	}
	return nil
}

// ---- usuarios ----

type userRepo struct {
	s      *Store
	locked bool
}

func (r *userRepo) GetByID(id string) (*entity.User, error) {
	defer r.s.lock(r.locked)()
	user, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *user
	return &cp, nil
}

func (r *userRepo) FindByEmail(email string) (*entity.User, error) {
	defer r.s.lock(r.locked)()
	for _, id := range r.s.userOrder {
		user := r.s.users[id]
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *userRepo) GetByEmailAndCompany(email, companyID string) (*entity.User, error) {
	defer r.s.lock(r.locked)()
	for _, id := range r.s.userOrder {
		user := r.s.users[id]
		if user.Email == email && user.CompanyID == companyID {
			cp := *user
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *userRepo) ListByCompany(companyID string) ([]*entity.User, error) {
	defer r.s.lock(r.locked)()
	var list []*entity.User
	for _, id := range r.s.userOrder {
		user := r.s.users[id]
		if user.CompanyID == companyID {
			cp := *user
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *userRepo) Create(user *entity.User) error {
	defer r.s.lock(r.locked)()
	cp := *user
	r.s.users[user.ID] = &cp
	r.s.userOrder = append(r.s.userOrder, user.ID)
	return nil
}

func (r *userRepo) Update(user *entity.User) error {
	defer r.s.lock(r.locked)()
	if _, ok := r.s.users[user.ID]; ok {
		cp := *user
		r.s.users[user.ID] = &cp
	}
	return nil
}

// ---- empresas ----

type companyRepo struct {
	s      *Store
	locked bool
}

func (r *companyRepo) GetByID(id string) (*entity.Company, error) {
	defer r.s.lock(r.locked)()
	company, ok := r.s.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *company
	return &cp, nil
}

func (r *companyRepo) List() ([]*entity.Company, error) {
	defer r.s.lock(r.locked)()
	var list []*entity.Company
	for _, id := range r.s.companyOrder {
		cp := *r.s.companies[id]
		list = append(list, &cp)
	}
	return list, nil
}

func (r *companyRepo) Create(company *entity.Company) error {
	defer r.s.lock(r.locked)()
	cp := *company
	r.s.companies[company.ID] = &cp
	r.s.companyOrder = append(r.s.companyOrder, company.ID)
	return nil
}

func (r *companyRepo) Update(company *entity.Company) error {
	defer r.s.lock(r.locked)()
	if _, ok := r.s.companies[company.ID]; ok {
		cp := *company
		r.s.companies[company.ID] = &cp
	}
	return nil
}
