package blend

// clearOp: 0
func clearOp(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return 0, 0, 0, 0
}

// source: S
func source(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

// destination: D
func destination(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return dr, dg, db, da
}

// sourceOver: S + D*(1-Sa)
func sourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	k := 255 - sa
	return addClamp(sr, mulDiv255(dr, k)),
		addClamp(sg, mulDiv255(dg, k)),
		addClamp(sb, mulDiv255(db, k)),
		addClamp(sa, mulDiv255(da, k))
}

// destinationOver: S*(1-Da) + D
func destinationOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return sourceOver(dr, dg, db, da, sr, sg, sb, sa)
}

// sourceIn: S*Da
func sourceIn(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return mulDiv255(sr, da), mulDiv255(sg, da), mulDiv255(sb, da), mulDiv255(sa, da)
}

// destinationIn: D*Sa
func destinationIn(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return sourceIn(dr, dg, db, da, sr, sg, sb, sa)
}

// sourceOut: S*(1-Da)
func sourceOut(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	k := 255 - da
	return mulDiv255(sr, k), mulDiv255(sg, k), mulDiv255(sb, k), mulDiv255(sa, k)
}

// destinationOut: D*(1-Sa)
func destinationOut(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return sourceOut(dr, dg, db, da, sr, sg, sb, sa)
}

// sourceAtop: S*Da + D*(1-Sa), alpha Da
func sourceAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	k := 255 - sa
	return addClamp(mulDiv255(sr, da), mulDiv255(dr, k)),
		addClamp(mulDiv255(sg, da), mulDiv255(dg, k)),
		addClamp(mulDiv255(sb, da), mulDiv255(db, k)),
		da
}

// destinationAtop: S*(1-Da) + D*Sa, alpha Sa
func destinationAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return sourceAtop(dr, dg, db, da, sr, sg, sb, sa)
}

// xor: S*(1-Da) + D*(1-Sa)
func xor(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	ks, kd := 255-da, 255-sa
	return addClamp(mulDiv255(sr, ks), mulDiv255(dr, kd)),
		addClamp(mulDiv255(sg, ks), mulDiv255(dg, kd)),
		addClamp(mulDiv255(sb, ks), mulDiv255(db, kd)),
		addClamp(mulDiv255(sa, ks), mulDiv255(da, kd))
}

// plus: min(S + D, 1)
func plus(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return addClamp(sr, dr), addClamp(sg, dg), addClamp(sb, db), addClamp(sa, da)
}

// saturate: S*min(1, (1-Da)/Sa) + D
func saturate(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	room := 255 - da
	if sa <= room {
		return plus(sr, sg, sb, sa, dr, dg, db, da)
	}
	k := byte((uint16(room)*255 + uint16(sa)/2) / uint16(sa))
	return addClamp(mulDiv255(sr, k), dr),
		addClamp(mulDiv255(sg, k), dg),
		addClamp(mulDiv255(sb, k), db),
		addClamp(mulDiv255(sa, k), da)
}
