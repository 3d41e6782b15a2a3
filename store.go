package flooring

import "sort"

// Store is the in-memory mapping of order number to Order, the unit of
// mutation. It exclusively owns all Order instances and never fails:
// all failure is pushed to persistence and to the validation performed
// before Add.
//
// The store is not safe for concurrent mutation; a single in-process
// caller drives all operations.
type Store struct {
	orders     map[int]Order
	lastNumber int // highest order number ever assigned or loaded
}

// NewStore creates an empty order store.
func NewStore() *Store {
	return &Store{orders: make(map[int]Order)}
}

// NextOrderNumber pre-increments and returns the allocator. Numbers are
// strictly increasing and never reused within a run, and the allocator is
// seeded from the maximum persisted number at load time so a restart
// never collides with data already on disk.
func (s *Store) NextOrderNumber() int {
	s.lastNumber++
	return s.lastNumber
}

// Add inserts or overwrites an order by its number. It serves both
// "create" and "save edited order": an edit is a full overwrite, not a
// field patch.
func (s *Store) Add(o Order) {
	s.orders[o.Number] = o
	if o.Number > s.lastNumber {
		s.lastNumber = o.Number
	}
}

// Remove deletes the order with the given number. Removing a non-existent
// number is a no-op: absence is a valid state at this layer.
func (s *Store) Remove(number int) {
	delete(s.orders, number)
}

// Get returns the order with the given number.
func (s *Store) Get(number int) (Order, bool) {
	o, ok := s.orders[number]
	return o, ok
}

// OrdersOn returns the orders placed on the given date, sorted by order
// number. A date with no orders yields an empty slice, never an error.
func (s *Store) OrdersOn(on Date) []Order {
	orders := make([]Order, 0)
	for _, o := range s.orders {
		if o.Date == on {
			orders = append(orders, o)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].Number < orders[j].Number })
	return orders
}

// All returns every order in the store, sorted by order number.
func (s *Store) All() []Order {
	orders := make([]Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].Number < orders[j].Number })
	return orders
}

// AllOrderNumbers returns every order number in the store, sorted.
func (s *Store) AllOrderNumbers() []int {
	numbers := make([]int, 0, len(s.orders))
	for n := range s.orders {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}

// Len returns the number of orders in the store.
func (s *Store) Len() int { return len(s.orders) }
