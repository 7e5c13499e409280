package builder

// New starts from the zero value of T.
func New[T any]() *Builder[T] {
	return From(new(T))
}

// From starts from obj, which is modified in place.
func From[T any](obj *T) *Builder[T] {
	return &Builder[T]{Obj: obj}
}

type Builder[T any] struct {
	Obj *T
	Err error
}

func (b *Builder[T]) Use(setters ...func(obj *T)) *Builder[T] {
	for _, setter := range setters {
		if setter != nil {
			setter(b.Obj)
		}
	}
	return b
}

func (b *Builder[T]) MaybeUse(setter func(obj *T) error) *Builder[T] {
	if b.Err == nil {
		b.Err = setter(b.Obj)
	}
	return b
}

func (b *Builder[T]) Get() (*T, error) {
	return b.Obj, b.Err
}

// Value returns a copy of the built object.
func (b *Builder[T]) Value() (T, error) {
	return *b.Obj, b.Err
}
