package bitengine

// leftN shifts b left by n squares one step at a time, clearing the column
// that would wrap into the row above on each step. A plain n-wide shift
// would instead corrupt rows: Left and Right move within a row only by
// construction, but only if the edge column is cleared before every single
// step.
func leftN(b BitBoard, edges Edges, n uint) BitBoard {
	for i := uint(0); i < n; i++ {
		b = b.AndNot(edges.Left).Left(1)
	}
	return b
}

// rightN is leftN's mirror image.
func rightN(b BitBoard, edges Edges, n uint) BitBoard {
	for i := uint(0); i < n; i++ {
		b = b.AndNot(edges.Right).Right(1)
	}
	return b
}
