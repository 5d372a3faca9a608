package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alejandrorivera22/great-travel/internal/model"
)

// MemStore is an in-memory Store used by service and handler tests.  It
// mirrors the SQL store's semantics, including the NotFound and conflict
// errors and the all-or-nothing Transact: the transactional callback
// runs against a deep copy of the data and the copy replaces the live
// data only when the callback succeeds.
type MemStore struct {
	mu sync.Mutex
	// tx marks a store handed to a Transact callback.  Such a store
	// skips locking (the outer call holds the lock) and runs nested
	// Transact calls in place.
	tx   bool
	data *memData
}

type memData struct {
	customers    map[string]*model.Customer
	flights      map[uint64]*model.Flight
	hotels       map[uint64]*model.Hotel
	tickets      map[string]*model.Ticket
	reservations map[string]*model.Reservation
	tours        map[uint64]*model.Tour
	nextTourID   uint64
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: &memData{
		customers:    map[string]*model.Customer{},
		flights:      map[uint64]*model.Flight{},
		hotels:       map[uint64]*model.Hotel{},
		tickets:      map[string]*model.Ticket{},
		reservations: map[string]*model.Reservation{},
		tours:        map[uint64]*model.Tour{},
	}}
}

// SeedFlight and friends load catalog and account fixtures directly,
// bypassing the Store interface, the way DDL seed rows would.

func (m *MemStore) SeedFlight(f model.Flight)    { m.data.flights[f.ID] = &f }
func (m *MemStore) SeedHotel(h model.Hotel)      { m.data.hotels[h.ID] = &h }
func (m *MemStore) SeedCustomer(c model.Customer) {
	c.Roles = append([]string(nil), c.Roles...)
	m.data.customers[c.DNI] = &c
}

func (m *MemStore) lock() {
	if !m.tx {
		m.mu.Lock()
	}
}

func (m *MemStore) unlock() {
	if !m.tx {
		m.mu.Unlock()
	}
}

// Transact clones the full data set, runs fn against the clone and
// swaps it in only on success, so a failing callback leaves no trace.
func (m *MemStore) Transact(ctx context.Context, fn func(Store) error) error {
	if m.tx {
		return fn(m)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	scratch := &MemStore{tx: true, data: m.data.clone()}
	if err := fn(scratch); err != nil {
		return err
	}
	m.data = scratch.data
	return nil
}

func (d *memData) clone() *memData {
	c := &memData{
		customers:    make(map[string]*model.Customer, len(d.customers)),
		flights:      make(map[uint64]*model.Flight, len(d.flights)),
		hotels:       make(map[uint64]*model.Hotel, len(d.hotels)),
		tickets:      make(map[string]*model.Ticket, len(d.tickets)),
		reservations: make(map[string]*model.Reservation, len(d.reservations)),
		tours:        make(map[uint64]*model.Tour, len(d.tours)),
		nextTourID:   d.nextTourID,
	}
	for k, v := range d.customers {
		cp := *v
		cp.Roles = append([]string(nil), v.Roles...)
		c.customers[k] = &cp
	}
	for k, v := range d.flights {
		cp := *v
		c.flights[k] = &cp
	}
	for k, v := range d.hotels {
		cp := *v
		c.hotels[k] = &cp
	}
	for k, v := range d.tickets {
		cp := *v
		cp.TourID = copyID(v.TourID)
		c.tickets[k] = &cp
	}
	for k, v := range d.reservations {
		cp := *v
		cp.TourID = copyID(v.TourID)
		c.reservations[k] = &cp
	}
	for k, v := range d.tours {
		cp := *v
		cp.TicketIDs = nil
		cp.ReservationIDs = nil
		c.tours[k] = &cp
	}
	return c
}

func copyID(id *uint64) *uint64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

// ---- customers ----

func (m *MemStore) CreateCustomer(ctx context.Context, c *model.Customer, role string) error {
	m.lock()
	defer m.unlock()
	if _, ok := m.data.customers[c.DNI]; ok {
		return ErrDNIExists
	}
	for _, other := range m.data.customers {
		if other.Username == c.Username {
			return ErrUsernameExists
		}
		if other.Email == c.Email {
			return ErrEmailExists
		}
	}
	if role != model.RoleCustomer && role != model.RoleAdmin {
		return NotFound("role")
	}
	cp := *c
	cp.Roles = []string{role}
	cp.Enabled = true
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	m.data.customers[cp.DNI] = &cp
	return nil
}

func (m *MemStore) CustomerByDNI(ctx context.Context, dni string) (*model.Customer, error) {
	m.lock()
	defer m.unlock()
	c, ok := m.data.customers[dni]
	if !ok {
		return nil, NotFound(TableCustomer)
	}
	cp := *c
	cp.Roles = append([]string(nil), c.Roles...)
	return &cp, nil
}

func (m *MemStore) CustomerByUsername(ctx context.Context, username string) (*model.Customer, error) {
	m.lock()
	defer m.unlock()
	for _, c := range m.data.customers {
		if c.Username == username {
			cp := *c
			cp.Roles = append([]string(nil), c.Roles...)
			return &cp, nil
		}
	}
	return nil, NotFound(TableCustomer)
}

func (m *MemStore) UpdateCustomerContact(ctx context.Context, dni, creditCard, phoneNumber string) error {
	m.lock()
	defer m.unlock()
	c, ok := m.data.customers[dni]
	if !ok {
		return NotFound(TableCustomer)
	}
	c.CreditCard = creditCard
	c.PhoneNumber = phoneNumber
	c.UpdatedAt = time.Now()
	return nil
}

func (m *MemStore) UpdateCustomerUsername(ctx context.Context, dni, username string) error {
	m.lock()
	defer m.unlock()
	c, ok := m.data.customers[dni]
	if !ok {
		return NotFound(TableCustomer)
	}
	for _, other := range m.data.customers {
		if other.DNI != dni && other.Username == username {
			return ErrUsernameExists
		}
	}
	c.Username = username
	c.UpdatedAt = time.Now()
	return nil
}

func (m *MemStore) UpdateCustomerPassword(ctx context.Context, dni, passwordHash string) error {
	m.lock()
	defer m.unlock()
	c, ok := m.data.customers[dni]
	if !ok {
		return NotFound(TableCustomer)
	}
	c.PasswordHash = passwordHash
	c.UpdatedAt = time.Now()
	return nil
}

func (m *MemStore) GrantRole(ctx context.Context, dni, role string) error {
	m.lock()
	defer m.unlock()
	if role != model.RoleCustomer && role != model.RoleAdmin {
		return NotFound("role")
	}
	c, ok := m.data.customers[dni]
	if !ok {
		return NotFound(TableCustomer)
	}
	if !c.HasRole(role) {
		c.Roles = append(c.Roles, role)
	}
	return nil
}

func (m *MemStore) IncrementCustomerCounter(ctx context.Context, dni string, counter Counter) error {
	m.lock()
	defer m.unlock()
	c, ok := m.data.customers[dni]
	if !ok {
		return NotFound(TableCustomer)
	}
	switch counter {
	case CounterFlights:
		c.TotalFlights++
	case CounterLodgings:
		c.TotalLodgings++
	case CounterTours:
		c.TotalTours++
	default:
		return NotFound(TableCustomer)
	}
	return nil
}

// ---- flights ----

func (m *MemStore) FlightByID(ctx context.Context, id uint64) (*model.Flight, error) {
	m.lock()
	defer m.unlock()
	f, ok := m.data.flights[id]
	if !ok {
		return nil, NotFound(TableFly)
	}
	cp := *f
	return &cp, nil
}

func (m *MemStore) Flights(ctx context.Context, page, size int, sortType SortType) ([]model.Flight, error) {
	m.lock()
	defer m.unlock()
	all := m.allFlights(func(*model.Flight) bool { return true })
	sortByPrice(all, sortType, func(f model.Flight) decimal.Decimal { return f.Price })
	return pageOf(all, page, size), nil
}

func (m *MemStore) FlightsCheaperThan(ctx context.Context, price decimal.Decimal) ([]model.Flight, error) {
	m.lock()
	defer m.unlock()
	return m.allFlights(func(f *model.Flight) bool { return f.Price.LessThan(price) }), nil
}

func (m *MemStore) FlightsBetweenPrice(ctx context.Context, min, max decimal.Decimal) ([]model.Flight, error) {
	m.lock()
	defer m.unlock()
	return m.allFlights(func(f *model.Flight) bool {
		return f.Price.GreaterThanOrEqual(min) && f.Price.LessThanOrEqual(max)
	}), nil
}

func (m *MemStore) FlightsByRoute(ctx context.Context, origin, destiny string) ([]model.Flight, error) {
	m.lock()
	defer m.unlock()
	return m.allFlights(func(f *model.Flight) bool {
		return f.OriginName == origin && f.DestinyName == destiny
	}), nil
}

func (m *MemStore) allFlights(keep func(*model.Flight) bool) []model.Flight {
	out := make([]model.Flight, 0)
	for _, f := range m.data.flights {
		if keep(f) {
			out = append(out, *f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ---- hotels ----

func (m *MemStore) HotelByID(ctx context.Context, id uint64) (*model.Hotel, error) {
	m.lock()
	defer m.unlock()
	h, ok := m.data.hotels[id]
	if !ok {
		return nil, NotFound(TableHotel)
	}
	cp := *h
	return &cp, nil
}

func (m *MemStore) Hotels(ctx context.Context, page, size int, sortType SortType) ([]model.Hotel, error) {
	m.lock()
	defer m.unlock()
	all := m.allHotels(func(*model.Hotel) bool { return true })
	sortByPrice(all, sortType, func(h model.Hotel) decimal.Decimal { return h.Price })
	return pageOf(all, page, size), nil
}

func (m *MemStore) HotelsCheaperThan(ctx context.Context, price decimal.Decimal) ([]model.Hotel, error) {
	m.lock()
	defer m.unlock()
	return m.allHotels(func(h *model.Hotel) bool { return h.Price.LessThan(price) }), nil
}

func (m *MemStore) HotelsBetweenPrice(ctx context.Context, min, max decimal.Decimal) ([]model.Hotel, error) {
	m.lock()
	defer m.unlock()
	return m.allHotels(func(h *model.Hotel) bool {
		return h.Price.GreaterThanOrEqual(min) && h.Price.LessThanOrEqual(max)
	}), nil
}

func (m *MemStore) HotelsRatedAbove(ctx context.Context, rating int) ([]model.Hotel, error) {
	m.lock()
	defer m.unlock()
	return m.allHotels(func(h *model.Hotel) bool { return h.Rating > rating }), nil
}

func (m *MemStore) allHotels(keep func(*model.Hotel) bool) []model.Hotel {
	out := make([]model.Hotel, 0)
	for _, h := range m.data.hotels {
		if keep(h) {
			out = append(out, *h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func sortByPrice[T any](items []T, sortType SortType, price func(T) decimal.Decimal) {
	switch sortType {
	case SortLower:
		sort.SliceStable(items, func(i, j int) bool { return price(items[i]).LessThan(price(items[j])) })
	case SortUpper:
		sort.SliceStable(items, func(i, j int) bool { return price(items[j]).LessThan(price(items[i])) })
	}
}

func pageOf[T any](items []T, page, size int) []T {
	start := page * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// ---- tickets ----

func (m *MemStore) CreateTicket(ctx context.Context, t *model.Ticket) error {
	m.lock()
	defer m.unlock()
	cp := *t
	cp.TourID = copyID(t.TourID)
	m.data.tickets[cp.ID] = &cp
	return nil
}

func (m *MemStore) TicketByID(ctx context.Context, id string) (*model.Ticket, error) {
	m.lock()
	defer m.unlock()
	t, ok := m.data.tickets[id]
	if !ok {
		return nil, NotFound(TableTicket)
	}
	cp := *t
	cp.TourID = copyID(t.TourID)
	return &cp, nil
}

func (m *MemStore) UpdateTicket(ctx context.Context, t *model.Ticket) error {
	m.lock()
	defer m.unlock()
	cur, ok := m.data.tickets[t.ID]
	if !ok {
		return NotFound(TableTicket)
	}
	cur.FlyID = t.FlyID
	cur.Price = t.Price
	cur.DepartureDate = t.DepartureDate
	cur.ArrivalDate = t.ArrivalDate
	return nil
}

func (m *MemStore) DeleteTicket(ctx context.Context, id string) error {
	m.lock()
	defer m.unlock()
	if _, ok := m.data.tickets[id]; !ok {
		return NotFound(TableTicket)
	}
	delete(m.data.tickets, id)
	return nil
}

func (m *MemStore) SetTicketTour(ctx context.Context, ticketID string, tourID *uint64) error {
	m.lock()
	defer m.unlock()
	t, ok := m.data.tickets[ticketID]
	if !ok {
		return NotFound(TableTicket)
	}
	t.TourID = copyID(tourID)
	return nil
}

func (m *MemStore) TicketIDsByTour(ctx context.Context, tourID uint64) ([]string, error) {
	m.lock()
	defer m.unlock()
	return m.ticketIDsByTour(tourID), nil
}

func (m *MemStore) ticketIDsByTour(tourID uint64) []string {
	var ids []string
	for id, t := range m.data.tickets {
		if t.TourID != nil && *t.TourID == tourID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// ---- reservations ----

func (m *MemStore) CreateReservation(ctx context.Context, r *model.Reservation) error {
	m.lock()
	defer m.unlock()
	cp := *r
	cp.TourID = copyID(r.TourID)
	m.data.reservations[cp.ID] = &cp
	return nil
}

func (m *MemStore) ReservationByID(ctx context.Context, id string) (*model.Reservation, error) {
	m.lock()
	defer m.unlock()
	r, ok := m.data.reservations[id]
	if !ok {
		return nil, NotFound(TableReservation)
	}
	cp := *r
	cp.TourID = copyID(r.TourID)
	return &cp, nil
}

func (m *MemStore) UpdateReservation(ctx context.Context, r *model.Reservation) error {
	m.lock()
	defer m.unlock()
	cur, ok := m.data.reservations[r.ID]
	if !ok {
		return NotFound(TableReservation)
	}
	cur.HotelID = r.HotelID
	cur.Price = r.Price
	cur.TotalDays = r.TotalDays
	cur.ReservedAt = r.ReservedAt
	cur.DateStart = r.DateStart
	cur.DateEnd = r.DateEnd
	return nil
}

func (m *MemStore) DeleteReservation(ctx context.Context, id string) error {
	m.lock()
	defer m.unlock()
	if _, ok := m.data.reservations[id]; !ok {
		return NotFound(TableReservation)
	}
	delete(m.data.reservations, id)
	return nil
}

func (m *MemStore) SetReservationTour(ctx context.Context, reservationID string, tourID *uint64) error {
	m.lock()
	defer m.unlock()
	r, ok := m.data.reservations[reservationID]
	if !ok {
		return NotFound(TableReservation)
	}
	r.TourID = copyID(tourID)
	return nil
}

func (m *MemStore) ReservationIDsByTour(ctx context.Context, tourID uint64) ([]string, error) {
	m.lock()
	defer m.unlock()
	return m.reservationIDsByTour(tourID), nil
}

func (m *MemStore) reservationIDsByTour(tourID uint64) []string {
	var ids []string
	for id, r := range m.data.reservations {
		if r.TourID != nil && *r.TourID == tourID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// ---- tours ----

func (m *MemStore) CreateTour(ctx context.Context, customerDNI string) (uint64, error) {
	m.lock()
	defer m.unlock()
	m.data.nextTourID++
	id := m.data.nextTourID
	m.data.tours[id] = &model.Tour{ID: id, CustomerDNI: customerDNI, CreatedAt: time.Now()}
	return id, nil
}

func (m *MemStore) TourByID(ctx context.Context, id uint64) (*model.Tour, error) {
	m.lock()
	defer m.unlock()
	return m.tourByID(id)
}

func (m *MemStore) TourForUpdate(ctx context.Context, id uint64) (*model.Tour, error) {
	m.lock()
	defer m.unlock()
	return m.tourByID(id)
}

func (m *MemStore) tourByID(id uint64) (*model.Tour, error) {
	t, ok := m.data.tours[id]
	if !ok {
		return nil, NotFound(TableTour)
	}
	cp := *t
	cp.TicketIDs = m.ticketIDsByTour(id)
	cp.ReservationIDs = m.reservationIDsByTour(id)
	return &cp, nil
}

func (m *MemStore) DeleteTour(ctx context.Context, id uint64) error {
	m.lock()
	defer m.unlock()
	if _, ok := m.data.tours[id]; !ok {
		return NotFound(TableTour)
	}
	delete(m.data.tours, id)
	return nil
}

func (m *MemStore) DetachTourChildren(ctx context.Context, id uint64) error {
	m.lock()
	defer m.unlock()
	for _, t := range m.data.tickets {
		if t.TourID != nil && *t.TourID == id {
			t.TourID = nil
		}
	}
	for _, r := range m.data.reservations {
		if r.TourID != nil && *r.TourID == id {
			r.TourID = nil
		}
	}
	return nil
}

var _ Store = (*MemStore)(nil)
var _ Store = (*SQLStore)(nil)
