package tagged

// Add returns t with rhs added to its value.
func Add[V Addable, T ImplementAdd](t Type[V, T], rhs V) Type[V, T] {
	return Type[V, T]{v: t.v + rhs}
}

// Sub returns t with rhs subtracted from its value.
func Sub[V Number, T ImplementSub](t Type[V, T], rhs V) Type[V, T] {
	return Type[V, T]{v: t.v - rhs}
}

// Mul returns t with its value multiplied by rhs.
func Mul[V Number, T ImplementMul](t Type[V, T], rhs V) Type[V, T] {
	return Type[V, T]{v: t.v * rhs}
}

// Div returns t with its value divided by rhs. Integer division by zero
// panics exactly as it does for V.
func Div[V Number, T ImplementDiv](t Type[V, T], rhs V) Type[V, T] {
	return Type[V, T]{v: t.v / rhs}
}
