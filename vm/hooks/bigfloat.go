package hooks

func (vh *VMHooks) BigFloatNewFromParts(integral, fractional, exponent int32) (int32, error) {
	if err := vh.useGas(vh.gas.BigFloatNew); err != nil {
		return 0, err
	}
	return vh.heap.BigFloatNewFromParts(integral, fractional, exponent)
}

func (vh *VMHooks) BigFloatNewFromFrac(numerator, denominator int64) (int32, error) {
	if err := vh.useGas(vh.gas.BigFloatNew); err != nil {
		return 0, err
	}
	return vh.heap.BigFloatNewFromFrac(numerator, denominator)
}

func (vh *VMHooks) BigFloatNewFromSci(significand, exponent int64) (int32, error) {
	if err := vh.useGas(vh.gas.BigFloatNew); err != nil {
		return 0, err
	}
	return vh.heap.BigFloatNewFromSci(significand, exponent)
}

func (vh *VMHooks) bigFloatOp(cost uint64, op func(dst, a, b int32) error, dst, a, b int32) error {
	if err := vh.useGas(cost); err != nil {
		return err
	}
	return op(dst, a, b)
}

func (vh *VMHooks) bigFloatUnary(cost uint64, op func(dst, a int32) error, dst, a int32) error {
	if err := vh.useGas(cost); err != nil {
		return err
	}
	return op(dst, a)
}

func (vh *VMHooks) BigFloatAdd(dst, a, b int32) error {
	return vh.bigFloatOp(vh.gas.BigFloatArith, vh.heap.BigFloatAdd, dst, a, b)
}

func (vh *VMHooks) BigFloatSub(dst, a, b int32) error {
	return vh.bigFloatOp(vh.gas.BigFloatArith, vh.heap.BigFloatSub, dst, a, b)
}

func (vh *VMHooks) BigFloatMul(dst, a, b int32) error {
	return vh.bigFloatOp(vh.gas.BigFloatArith, vh.heap.BigFloatMul, dst, a, b)
}

func (vh *VMHooks) BigFloatDiv(dst, a, b int32) error {
	return vh.bigFloatOp(vh.gas.BigFloatDiv, vh.heap.BigFloatDiv, dst, a, b)
}

func (vh *VMHooks) BigFloatNeg(dst, a int32) error {
	return vh.bigFloatUnary(vh.gas.BigFloatArith, vh.heap.BigFloatNeg, dst, a)
}

func (vh *VMHooks) BigFloatClone(dst, a int32) error {
	return vh.bigFloatUnary(vh.gas.BigFloatNew, vh.heap.BigFloatClone, dst, a)
}

func (vh *VMHooks) BigFloatAbs(dst, a int32) error {
	return vh.bigFloatUnary(vh.gas.BigFloatArith, vh.heap.BigFloatAbs, dst, a)
}

func (vh *VMHooks) BigFloatSqrt(dst, a int32) error {
	return vh.bigFloatUnary(vh.gas.BigFloatSqrt, vh.heap.BigFloatSqrt, dst, a)
}

func (vh *VMHooks) BigFloatPow(dst, a int32, exponent int32) error {
	if err := vh.useGas(vh.gas.BigFloatPow); err != nil {
		return err
	}
	return vh.heap.BigFloatPow(dst, a, exponent)
}

func (vh *VMHooks) BigFloatCmp(a, b int32) (int32, error) {
	if err := vh.useGas(vh.gas.BigFloatCompare); err != nil {
		return 0, err
	}
	return vh.heap.BigFloatCmp(a, b)
}

func (vh *VMHooks) BigFloatSign(h int32) (int32, error) {
	if err := vh.useGas(vh.gas.BigFloatCompare); err != nil {
		return 0, err
	}
	return vh.heap.BigFloatSign(h)
}

func (vh *VMHooks) BigFloatIsInt(h int32) (int32, error) {
	if err := vh.useGas(vh.gas.BigFloatCompare); err != nil {
		return 0, err
	}
	ok, err := vh.heap.BigFloatIsInt(h)
	return boolToInt32(ok), err
}

func (vh *VMHooks) BigFloatFloor(dstBigInt, a int32) error {
	return vh.bigFloatUnary(vh.gas.BigFloatConversion, vh.heap.BigFloatFloor, dstBigInt, a)
}

func (vh *VMHooks) BigFloatCeil(dstBigInt, a int32) error {
	return vh.bigFloatUnary(vh.gas.BigFloatConversion, vh.heap.BigFloatCeil, dstBigInt, a)
}

func (vh *VMHooks) BigFloatTruncate(dstBigInt, a int32) error {
	return vh.bigFloatUnary(vh.gas.BigFloatConversion, vh.heap.BigFloatTruncate, dstBigInt, a)
}

func (vh *VMHooks) BigFloatSetInt64(dst int32, value int64) error {
	if err := vh.useGas(vh.gas.BigFloatConversion); err != nil {
		return err
	}
	return vh.heap.BigFloatSetInt64(dst, value)
}

func (vh *VMHooks) BigFloatSetBigInt(dst, bigInt int32) error {
	return vh.bigFloatUnary(vh.gas.BigFloatConversion, vh.heap.BigFloatSetBigInt, dst, bigInt)
}

func (vh *VMHooks) BigFloatGetConstPi(dst int32) error {
	if err := vh.useGas(vh.gas.BigFloatConst); err != nil {
		return err
	}
	return vh.heap.BigFloatGetConstPi(dst)
}

func (vh *VMHooks) BigFloatGetConstE(dst int32) error {
	if err := vh.useGas(vh.gas.BigFloatConst); err != nil {
		return err
	}
	return vh.heap.BigFloatGetConstE(dst)
}
