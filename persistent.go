package bazaar

// Validater is any struct that can be validated.
type Validater interface {
	Validate() error
}
