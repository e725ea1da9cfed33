package logging

import (
	"reflect"
)

// enricher enriches a log record with further meaningful attributes that aren't
// readily available to the caller.
type enricher struct {
	updaters []ArgsUpdater
}

func (e *enricher) AddArgsUpdater(updater ArgsUpdater) {
	e.updaters = append(e.updaters, updater)
}

func (e *enricher) enrich(args ...any) []any {
	for _, en := range e.updaters {
		args = en.UpdateArgs(args...)
	}
	return args
}

// ArgsUpdater updates a log message's arguments.
type ArgsUpdater interface {
	UpdateArgs(args ...any) []any
}

// ReferenceUpdater checks log arguments for references to T via its key K,
// either directly or via a struct field, and updates or adds T to the log
// arguments accordingly.
type ReferenceUpdater[K comparable, T any] struct {
	Getter[K, T]

	Name  string
	Field string
}

type Getter[K comparable, T any] interface {
	Get(K) (T, error)
}

func (e *ReferenceUpdater[K, T]) UpdateArgs(args ...any) []any {
	for i, arg := range args {
		// Where an argument is of type K, try and retrieve the entity
		// corresponding to the key and replace argument with the entity.
		if key, ok := arg.(K); ok {
			t, err := e.Get(key)
			if err != nil {
				continue
			}
			args[i] = t
			return args
		}
		// Where an argument is a struct (or a pointer to a struct), check if it
		// has a field matching the expected field name, with a corresponding
		// value of type K, and if so, try and retrieve the entity with that
		// key and add it as a log argument preceded with e.Name.
		v := reflect.Indirect(reflect.ValueOf(arg))
		if v.Kind() != reflect.Struct {
			continue
		}
		f := reflect.Indirect(v.FieldByName(e.Field))
		if !f.IsValid() || !f.CanInterface() {
			continue
		}
		key, ok := f.Interface().(K)
		if !ok {
			continue
		}
		t, err := e.Get(key)
		if err != nil {
			// T with key does not exist
			continue
		}
		return append(args, e.Name, t)
	}
	return args
}
