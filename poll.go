package nmea

// GBQ, GLQ, GNQ and GPQ poll a receiver for one standard message. The
// letter in the code selects the talker of the requested reply.
type (
	GBQ struct{ MessageID string }
	GLQ struct{ MessageID string }
	GNQ struct{ MessageID string }
	GPQ struct{ MessageID string }
)

func (GBQ) Code() string { return "GBQ" }
func (GLQ) Code() string { return "GLQ" }
func (GNQ) Code() string { return "GNQ" }
func (GPQ) Code() string { return "GPQ" }

func (GBQ) isMessage() {}
func (GLQ) isMessage() {}
func (GNQ) isMessage() {}
func (GPQ) isMessage() {}

func init() {
	register("GBQ", poll(func(id string) GBQ { return GBQ{id} }))
	register("GLQ", poll(func(id string) GLQ { return GLQ{id} }))
	register("GNQ", poll(func(id string) GNQ { return GNQ{id} }))
	register("GPQ", poll(func(id string) GPQ { return GPQ{id} }))
}

func poll[M Message](mk func(string) M) func(*fieldReader) (M, error) {
	return func(r *fieldReader) (M, error) {
		id, err := r.str()
		if err != nil {
			var zero M
			return zero, err
		}
		return mk(id), nil
	}
}
