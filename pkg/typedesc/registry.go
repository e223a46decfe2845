package typedesc

import (
	"reflect"
	"sync"

	"github.com/pkg/errors"
)

// typeRegistry is a process-wide table of variant and enum declarations
// that reflection alone cannot see. Registration order is preserved so
// generated output stays stable across runs.
type typeRegistry struct {
	mu       sync.Mutex
	variants map[reflect.Type][]reflect.Type
	enums    map[reflect.Type][]string
}

var global = &typeRegistry{
	variants: make(map[reflect.Type][]reflect.Type),
	enums:    make(map[reflect.Type][]string),
}

// RegisterVariants declares the closed set of types implementing an
// interface. The iface argument must be a nil pointer to the interface
// type, e.g.:
//
//	typedesc.RegisterVariants((*Shape)(nil), Circle{}, Rectangle{})
//
// Implementations are recorded in the given order. Registering the same
// interface again appends any implementations not seen before.
func RegisterVariants(iface any, impls ...any) error {
	ifaceType, err := interfaceType(iface)
	if err != nil {
		return err
	}
	implTypes := make([]reflect.Type, 0, len(impls))
	for _, impl := range impls {
		t := reflect.TypeOf(impl)
		if t == nil {
			return errors.Errorf("cannot register untyped nil as a variant of %s", ifaceType)
		}
		if !t.Implements(ifaceType) {
			return errors.Errorf("%s does not implement %s", t, ifaceType)
		}
		implTypes = append(implTypes, t)
	}
	global.mu.Lock()
	defer global.mu.Unlock()
	for _, t := range implTypes {
		if !containsType(global.variants[ifaceType], t) {
			global.variants[ifaceType] = append(global.variants[ifaceType], t)
		}
	}
	return nil
}

// RegisterEnumValues declares the constant values of an enumerated type
// in declaration order. The value argument carries the type, e.g.:
//
//	typedesc.RegisterEnumValues(Status(""), "active", "suspended")
func RegisterEnumValues(value any, values ...string) error {
	t := reflect.TypeOf(value)
	if t == nil {
		return errors.New("cannot register enum values for untyped nil")
	}
	if t.PkgPath() == "" {
		return errors.Errorf("%s is not a named type", t)
	}
	global.mu.Lock()
	defer global.mu.Unlock()
	global.enums[t] = append(global.enums[t][:0:0], values...)
	return nil
}

// ResetRegistry clears all process-wide registrations.
func ResetRegistry() {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.variants = make(map[reflect.Type][]reflect.Type)
	global.enums = make(map[reflect.Type][]string)
}

func (r *typeRegistry) variantsOf(ifaceType reflect.Type) []reflect.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]reflect.Type(nil), r.variants[ifaceType]...)
}

func (r *typeRegistry) valuesOf(t reflect.Type) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.enums[t]...)
}

func interfaceType(iface any) (reflect.Type, error) {
	t := reflect.TypeOf(iface)
	if t == nil || t.Kind() != reflect.Ptr || t.Elem().Kind() != reflect.Interface {
		return nil, errors.New("expected a nil pointer to an interface type, e.g. (*Shape)(nil)")
	}
	return t.Elem(), nil
}

func containsType(types []reflect.Type, t reflect.Type) bool {
	for _, existing := range types {
		if existing == t {
			return true
		}
	}
	return false
}
