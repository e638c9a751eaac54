package domain

// Field ids with dispatcher-level meaning. Every other key in a parameter
// bag is opaque to the dispatcher and owned by the tool descriptors.
const (
	FieldCredential = "credential"
	FieldOperation  = "operation"
)

// Params is an ordered parameter bag. Request construction must be
// deterministic, so retained keys keep their insertion order; a plain map
// would shuffle them between runs.
type Params struct {
	keys   []string
	values map[string]any
}

func NewParams() *Params {
	return &Params{values: make(map[string]any)}
}

// Set adds or replaces a value. A replaced key keeps its original position.
func (p *Params) Set(key string, value any) *Params {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	return p
}

func (p *Params) Get(key string) (any, bool) {
	v, ok := p.values[key]
	return v, ok
}

// GetString returns the value for key if it is a string, else "".
func (p *Params) GetString(key string) string {
	if s, ok := p.values[key].(string); ok {
		return s
	}
	return ""
}

// Keys returns the insertion order of the bag. The returned slice is a copy.
func (p *Params) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

func (p *Params) Len() int { return len(p.keys) }

// Map flattens the bag for serialization. Ordering is lost; use Keys when
// order matters.
func (p *Params) Map() map[string]any {
	out := make(map[string]any, len(p.values))
	for k, v := range p.values {
		out[k] = v
	}
	return out
}

// Sanitize prepares a bag for tool invocation:
//
//   - credential is always retained and materialized first, even when empty
//     or absent from the input;
//   - operation is dropped (it only selected the tool);
//   - every other entry is dropped when its value is nil or the empty
//     string, and kept verbatim otherwise;
//   - retained keys keep the input bag's order.
//
// The receiver is not modified; sanitizing twice yields the same bag.
func (p *Params) Sanitize() *Params {
	out := NewParams()
	if cred, ok := p.values[FieldCredential]; ok {
		out.Set(FieldCredential, cred)
	}
	for _, key := range p.keys {
		if key == FieldCredential || key == FieldOperation {
			continue
		}
		value := p.values[key]
		if value == nil {
			continue
		}
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		out.Set(key, value)
	}
	return out
}
