package detar

// decodeHeader decodes one 512-byte header record at the cursor. Any
// field failure aborts the decode; the record past the linkname slot
// is handed to decodeUstar.
func decodeHeader(r *reader) (PosixHeader, error) {
	var (
		h   PosixHeader
		err error
	)
	if h.Name, err = r.textAt("name", nameWidth); err != nil {
		return h, err
	}
	if h.Mode, err = r.textAt("mode", modeWidth); err != nil {
		return h, err
	}
	if h.UID, err = r.octalAt("uid", uidWidth); err != nil {
		return h, err
	}
	if h.GID, err = r.octalAt("gid", gidWidth); err != nil {
		return h, err
	}
	if h.Size, err = r.octalAt("size", sizeWidth); err != nil {
		return h, err
	}
	if h.ModTime, err = r.octalAt("mtime", mtimeWidth); err != nil {
		return h, err
	}
	if h.Checksum, err = r.textAt("chksum", checksumWidth); err != nil {
		return h, err
	}
	off := r.off
	flag, err := r.take(1)
	if err != nil {
		return h, &FieldError{Field: "typeflag", Offset: off, Err: err}
	}
	h.TypeFlag = typeFlagOf(flag[0])
	if h.LinkName, err = r.textAt("linkname", linkNameWidth); err != nil {
		return h, err
	}
	if h.Ustar, err = decodeUstar(r); err != nil {
		return h, err
	}
	return h, nil
}

// decodeUstar decodes the trailing 255 bytes of a header record. When
// the ustar magic and version match and every extension field decodes,
// it returns the populated extension block. Otherwise the bytes are
// plain pre-ustar padding and there is no extension, which is not an
// error. Only a truncated record fails.
func decodeUstar(r *reader) (*UstarHeader, error) {
	off := r.off
	area, err := r.take(ustarAreaSize)
	if err != nil {
		return nil, &FieldError{Field: "ustar", Offset: off, Err: err}
	}
	if string(area[:len(ustarMagic)]) != ustarMagic {
		return nil, nil
	}
	if string(area[len(ustarMagic):len(ustarMagic)+len(ustarVersion)]) != ustarVersion {
		return nil, nil
	}
	sub := reader{buf: area, off: len(ustarMagic) + len(ustarVersion)}
	u := &UstarHeader{Magic: ustarMagic, Version: ustarVersion}
	if u.Uname, err = sub.field(unameWidth); err != nil {
		return nil, nil
	}
	if u.Gname, err = sub.field(gnameWidth); err != nil {
		return nil, nil
	}
	if u.DevMajor, err = sub.octalField(devWidth); err != nil {
		return nil, nil
	}
	if u.DevMinor, err = sub.octalField(devWidth); err != nil {
		return nil, nil
	}
	if u.Prefix, err = sub.field(prefixWidth); err != nil {
		return nil, nil
	}
	// The 12 bytes left in the area complete the 512-byte record.
	return u, nil
}
