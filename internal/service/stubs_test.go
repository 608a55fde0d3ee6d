package service

// In-memory repository stubs shared by the service unit tests. They satisfy
// the repository interfaces and return a nil *gorm.DB so runTx executes the
// transaction body directly.

import (
	"context"
	"strings"
	"sync"

	"github.com/Bran258/land-roys-v4/internal/dto"
	"github.com/Bran258/land-roys-v4/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// coincideBusqueda mirrors the catalog search: case-insensitive substring
// match over name, description and category name.
func coincideBusqueda(term, nombre string, descripcion *string, categoria string) bool {
	t := strings.ToLower(term)
	if strings.Contains(strings.ToLower(nombre), t) {
		return true
	}
	if descripcion != nil && strings.Contains(strings.ToLower(*descripcion), t) {
		return true
	}
	return strings.Contains(strings.ToLower(categoria), t)
}

// ── Categoria ────────────────────────────────────────────────────────────────

type stubCategoriaRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*model.Categoria
}

func newStubCategoriaRepo() *stubCategoriaRepo {
	return &stubCategoriaRepo{items: map[uuid.UUID]*model.Categoria{}}
}

func (r *stubCategoriaRepo) Create(_ context.Context, c *model.Categoria) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *stubCategoriaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Categoria, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubCategoriaRepo) List(_ context.Context, linea string) ([]model.Categoria, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Categoria
	for _, c := range r.items {
		if linea != "" && c.Linea != linea {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoriaRepo) FindChildren(_ context.Context, parentID uuid.UUID) ([]model.Categoria, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Categoria
	for _, c := range r.items {
		if c.ParentID != nil && *c.ParentID == parentID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubCategoriaRepo) Update(_ context.Context, c *model.Categoria) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *stubCategoriaRepo) UpdateParent(_ context.Context, id uuid.UUID, parentID *uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.items[id]; ok {
		c.ParentID = parentID
	}
	return nil
}

func (r *stubCategoriaRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *stubCategoriaRepo) DeleteChildrenTx(_ *gorm.DB, parentID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, c := range r.items {
		if c.ParentID != nil && *c.ParentID == parentID {
			delete(r.items, id)
		}
	}
	return nil
}

func (r *stubCategoriaRepo) DB() *gorm.DB { return nil }

// ── Moto ─────────────────────────────────────────────────────────────────────

type stubMotoRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*model.Moto
	specs map[uuid.UUID]*model.MotoSpec
}

func newStubMotoRepo() *stubMotoRepo {
	return &stubMotoRepo{
		items: map[uuid.UUID]*model.Moto{},
		specs: map[uuid.UUID]*model.MotoSpec{},
	}
}

func (r *stubMotoRepo) Create(_ context.Context, m *model.Moto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	cp := *m
	r.items[m.ID] = &cp
	return nil
}

func (r *stubMotoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Moto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *m
	if s, ok := r.specs[id]; ok {
		sc := *s
		cp.Specs = &sc
	}
	return &cp, nil
}

func (r *stubMotoRepo) List(_ context.Context, filter dto.MotoFilter, categorias []string) ([]model.Moto, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	catSet := map[string]bool{}
	for _, c := range categorias {
		catSet[c] = true
	}
	var out []model.Moto
	for _, m := range r.items {
		if len(categorias) > 0 && !catSet[m.Categoria] {
			continue
		}
		if filter.Busqueda != "" && !coincideBusqueda(filter.Busqueda, m.Nombre, m.Descripcion, m.Categoria) {
			continue
		}
		if filter.ConStock && m.Stock <= 0 {
			continue
		}
		if filter.Estado != "" && filter.Estado != "all" && m.Estado != filter.Estado {
			continue
		}
		out = append(out, *m)
	}
	return out, int64(len(out)), nil
}

func (r *stubMotoRepo) Update(_ context.Context, m *model.Moto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *m
	cp.Specs = nil
	r.items[m.ID] = &cp
	return nil
}

func (r *stubMotoRepo) UpdateStock(_ context.Context, id uuid.UUID, stock int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.items[id]; ok {
		m.Stock = stock
	}
	return nil
}

// DescontarStockVentaTx mirrors the conditional UPDATE ... RETURNING: the
// decrement only happens while stock is positive, atomically under the lock,
// and the post-decrement value is what the caller ledgers.
func (r *stubMotoRepo) DescontarStockVentaTx(_ *gorm.DB, id uuid.UUID) (int, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.items[id]
	if !ok || m.Stock <= 0 {
		return 0, false, nil
	}
	m.Stock--
	return m.Stock, true, nil
}

func (r *stubMotoRepo) UpsertSpecs(_ context.Context, s *model.MotoSpec) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.specs[s.MotoID] = &cp
	return nil
}

func (r *stubMotoRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *stubMotoRepo) DeleteSpecsTx(_ *gorm.DB, motoID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.specs, motoID)
	return nil
}

func (r *stubMotoRepo) DB() *gorm.DB { return nil }

// ── Repuesto ─────────────────────────────────────────────────────────────────

type stubRepuestoRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*model.Repuesto
}

func newStubRepuestoRepo() *stubRepuestoRepo {
	return &stubRepuestoRepo{items: map[uuid.UUID]*model.Repuesto{}}
}

func (r *stubRepuestoRepo) Create(_ context.Context, rep *model.Repuesto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rep.ID == uuid.Nil {
		rep.ID = uuid.New()
	}
	cp := *rep
	r.items[rep.ID] = &cp
	return nil
}

func (r *stubRepuestoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Repuesto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rep, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *rep
	return &cp, nil
}

func (r *stubRepuestoRepo) List(_ context.Context, filter dto.RepuestoFilter, categorias []string) ([]model.Repuesto, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	catSet := map[string]bool{}
	for _, c := range categorias {
		catSet[c] = true
	}
	var out []model.Repuesto
	for _, rep := range r.items {
		if len(categorias) > 0 && !catSet[rep.Categoria] {
			continue
		}
		if filter.Busqueda != "" && !coincideBusqueda(filter.Busqueda, rep.Nombre, rep.Descripcion, rep.Categoria) {
			continue
		}
		if filter.ConStock && rep.Stock <= 0 {
			continue
		}
		out = append(out, *rep)
	}
	return out, int64(len(out)), nil
}

func (r *stubRepuestoRepo) Update(_ context.Context, rep *model.Repuesto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *rep
	r.items[rep.ID] = &cp
	return nil
}

func (r *stubRepuestoRepo) UpdateStock(_ context.Context, id uuid.UUID, stock int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rep, ok := r.items[id]; ok {
		rep.Stock = stock
	}
	return nil
}

func (r *stubRepuestoRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *stubRepuestoRepo) DB() *gorm.DB { return nil }

// ── Solicitud ────────────────────────────────────────────────────────────────

type stubSolicitudRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*model.Solicitud
}

func newStubSolicitudRepo() *stubSolicitudRepo {
	return &stubSolicitudRepo{items: map[uuid.UUID]*model.Solicitud{}}
}

func (r *stubSolicitudRepo) Create(_ context.Context, s *model.Solicitud) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *stubSolicitudRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Solicitud, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *stubSolicitudRepo) List(_ context.Context, filter dto.SolicitudFilter) ([]model.Solicitud, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Solicitud
	for _, s := range r.items {
		if filter.Estado != "" && filter.Estado != "all" && s.Estado != filter.Estado {
			continue
		}
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *stubSolicitudRepo) Update(_ context.Context, s *model.Solicitud) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *stubSolicitudRepo) UpdateTx(_ *gorm.DB, s *model.Solicitud) error {
	return r.Update(context.Background(), s)
}

func (r *stubSolicitudRepo) DB() *gorm.DB { return nil }

// ── Venta ────────────────────────────────────────────────────────────────────

type stubVentaRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*model.Venta
}

func newStubVentaRepo() *stubVentaRepo {
	return &stubVentaRepo{items: map[uuid.UUID]*model.Venta{}}
}

func (r *stubVentaRepo) CreateTx(_ *gorm.DB, v *model.Venta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	cp := *v
	r.items[v.ID] = &cp
	return nil
}

func (r *stubVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *v
	return &cp, nil
}

func (r *stubVentaRepo) FindBySolicitudID(_ context.Context, solicitudID uuid.UUID) (*model.Venta, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.items {
		if v.SolicitudID == solicitudID {
			cp := *v
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubVentaRepo) List(_ context.Context, _ dto.VentaFilter) ([]model.Venta, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Venta
	for _, v := range r.items {
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

func (r *stubVentaRepo) ListSinMovimiento(_ context.Context) ([]model.Venta, error) {
	return nil, nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

// ── MovimientoStock ──────────────────────────────────────────────────────────

type stubMovimientoRepo struct {
	mu    sync.Mutex
	items []model.MovimientoStock
}

func newStubMovimientoRepo() *stubMovimientoRepo { return &stubMovimientoRepo{} }

func (r *stubMovimientoRepo) Create(_ context.Context, m *model.MovimientoStock) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.items = append(r.items, *m)
	return nil
}

func (r *stubMovimientoRepo) CreateTx(_ *gorm.DB, m *model.MovimientoStock) error {
	return r.Create(context.Background(), m)
}

func (r *stubMovimientoRepo) List(_ context.Context, filter dto.MovimientoFilter) ([]model.MovimientoStock, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.MovimientoStock
	for _, m := range r.items {
		if filter.Tipo != "" && m.Tipo != filter.Tipo {
			continue
		}
		if filter.ProductoID != "" && m.ProductoID.String() != filter.ProductoID {
			continue
		}
		out = append(out, m)
	}
	return out, int64(len(out)), nil
}

func (r *stubMovimientoRepo) DB() *gorm.DB { return nil }

// ── Oferta ───────────────────────────────────────────────────────────────────

type stubOfertaRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*model.Oferta
}

func newStubOfertaRepo() *stubOfertaRepo {
	return &stubOfertaRepo{items: map[uuid.UUID]*model.Oferta{}}
}

func (r *stubOfertaRepo) Create(_ context.Context, o *model.Oferta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	cp := *o
	r.items[o.ID] = &cp
	return nil
}

func (r *stubOfertaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Oferta, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *stubOfertaRepo) List(_ context.Context, soloActivas bool) ([]model.Oferta, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Oferta
	for _, o := range r.items {
		if soloActivas && !o.Activo {
			continue
		}
		out = append(out, *o)
	}
	return out, nil
}

func (r *stubOfertaRepo) Update(_ context.Context, o *model.Oferta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *o
	r.items[o.ID] = &cp
	return nil
}

func (r *stubOfertaRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *stubOfertaRepo) DB() *gorm.DB { return nil }

// ── Slider ───────────────────────────────────────────────────────────────────

type stubSliderRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*model.Slide
}

func newStubSliderRepo() *stubSliderRepo {
	return &stubSliderRepo{items: map[uuid.UUID]*model.Slide{}}
}

func (r *stubSliderRepo) Create(_ context.Context, s *model.Slide) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *stubSliderRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Slide, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *stubSliderRepo) List(_ context.Context, soloActivos bool) ([]model.Slide, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Slide
	for _, s := range r.items {
		if soloActivos && !s.Activo {
			continue
		}
		out = append(out, *s)
	}
	// ordered by orden, simple insertion sort given the 5-slide cap
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Orden < out[j-1].Orden; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out, nil
}

func (r *stubSliderRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

func (r *stubSliderRepo) Update(_ context.Context, s *model.Slide) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *stubSliderRepo) UpdateOrdenTx(_ *gorm.DB, id uuid.UUID, orden int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.items[id]; ok {
		s.Orden = orden
	}
	return nil
}

func (r *stubSliderRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *stubSliderRepo) DB() *gorm.DB { return nil }

// ── Ranking ──────────────────────────────────────────────────────────────────

type stubRankingRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*model.RankingItem
}

func newStubRankingRepo() *stubRankingRepo {
	return &stubRankingRepo{items: map[uuid.UUID]*model.RankingItem{}}
}

func (r *stubRankingRepo) List(_ context.Context, soloActivos bool) ([]model.RankingItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.RankingItem
	for _, it := range r.items {
		if soloActivos && !it.Activo {
			continue
		}
		out = append(out, *it)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Posicion < out[j-1].Posicion; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out, nil
}

func (r *stubRankingRepo) FindByID(_ context.Context, id uuid.UUID) (*model.RankingItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *it
	return &cp, nil
}

func (r *stubRankingRepo) UpsertTx(_ *gorm.DB, item *model.RankingItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *stubRankingRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *stubRankingRepo) DB() *gorm.DB { return nil }
