package ptr

// Ptr возвращает указатель на переданное значение
// Удобно для передачи литералов в параметры с указателями
func Ptr[T any](v T) *T {
	return &v
}

// Deref разыменовывает указатель, возвращая дефолтное значение для nil
func Deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
