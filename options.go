package detar

// WithCompression tells the decoder the archive is compressed with
// algorithm and must be inflated into memory before decoding.
func WithCompression(algorithm Algorithm) Option {
	return func(i private) error {
		if algorithm.String() == unknownValue {
			return ErrUnknownValue
		}
		d, ok := i.(*Decoder)
		if !ok {
			return ErrInapplicableOption
		}
		d.algorithm = algorithm
		return nil
	}
}

// WithBinaryContents lifts the text restriction on entry contents,
// leaving payload bytes unvalidated. Header fields stay text-only.
func WithBinaryContents() Option {
	return func(i private) error {
		d, ok := i.(*Decoder)
		if !ok {
			return ErrInapplicableOption
		}
		d.binaryContents = true
		return nil
	}
}

// WithChecksumVerification checks the recorded checksum of every
// header record against the computed one. Records carrying no
// checksum, such as the end-of-archive markers, are not verified.
func WithChecksumVerification() Option {
	return func(i private) error {
		d, ok := i.(*Decoder)
		if !ok {
			return ErrInapplicableOption
		}
		d.verifyChecksum = true
		return nil
	}
}
