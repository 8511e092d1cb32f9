package imagepkg

// gopherWebP is a 75x100 lossless WEBP (VP8L) image.
var gopherWebP = []byte{
	0x52, 0x49, 0x46, 0x46, 0xb2, 0x01, 0x00, 0x00, 0x57, 0x45, 0x42, 0x50,
	0x56, 0x50, 0x38, 0x4c, 0xa5, 0x01, 0x00, 0x00, 0x2f, 0x4a, 0xc0, 0x18,
	0x00, 0x0f, 0x30, 0xff, 0xf3, 0x3f, 0xff, 0xf3, 0x1f, 0x78, 0x90, 0x24,
	0x6d, 0x7b, 0xda, 0x48, 0x6e, 0xe6, 0xf1, 0x0d, 0xc6, 0x7d, 0x84, 0x81,
	0x25, 0xe9, 0x30, 0x43, 0x3b, 0x66, 0xfc, 0x87, 0x19, 0x96, 0x0c, 0x27,
	0x99, 0x62, 0x26, 0x9f, 0x60, 0x4a, 0xed, 0xa1, 0x66, 0x06, 0xd9, 0xd5,
	0x8a, 0xbe, 0xaa, 0xff, 0xff, 0x15, 0x3a, 0x41, 0x44, 0xff, 0x19, 0xb8,
	0x6d, 0xa4, 0xc8, 0xbb, 0xc7, 0x38, 0xf0, 0x0a, 0xc4, 0xa3, 0xaf, 0x81,
	0xdf, 0x31, 0x4a, 0x62, 0x59, 0xf7, 0xa6, 0xa0, 0xa5, 0x48, 0x22, 0x97,
	0xd1, 0xb7, 0xa0, 0x15, 0x30, 0x17, 0x14, 0xe2, 0xd7, 0x1d, 0x2c, 0x85,
	0xf1, 0xc0, 0x8d, 0x71, 0x91, 0x06, 0xe0, 0xec, 0xb0, 0xb8, 0x0e, 0x0a,
	0x55, 0x57, 0xc9, 0x0a, 0x20, 0x2b, 0x53, 0xb1, 0x80, 0x80, 0x92, 0x3c,
	0xfa, 0x52, 0x4f, 0xfc, 0xe2, 0x8c, 0x4f, 0xf7, 0xc1, 0x02, 0x37, 0xaf,
	0x83, 0x57, 0x18, 0x07, 0xb6, 0x15, 0x90, 0x5b, 0x96, 0x81, 0xad, 0xa5,
	0xc8, 0xf8, 0xb9, 0x23, 0x41, 0xc5, 0xcb, 0x96, 0x13, 0xa5, 0x62, 0x07,
	0x83, 0x44, 0x59, 0xa6, 0x49, 0xe2, 0x45, 0x55, 0xbd, 0xa1, 0xd1, 0xc0,
	0x28, 0xec, 0x28, 0xb1, 0x6b, 0x8e, 0x19, 0xdc, 0x48, 0xca, 0x7d, 0x8e,
	0xbd, 0xa0, 0x83, 0xbe, 0x18, 0x3f, 0xc1, 0xee, 0x93, 0xc1, 0xa7, 0x4f,
	0x04, 0xf6, 0xea, 0x05, 0x5e, 0x7c, 0x32, 0xc2, 0xe6, 0x30, 0x9f, 0x32,
	0x66, 0x73, 0x96, 0x93, 0xc4, 0x91, 0xcf, 0x83, 0x7e, 0x42, 0x8c, 0x8f,
	0x2f, 0xe3, 0x27, 0x6a, 0x6c, 0xcc, 0xbd, 0xc1, 0x35, 0xac, 0x73, 0x44,
	0xaf, 0xdd, 0x45, 0xf4, 0x62, 0x99, 0x3d, 0x55, 0x1c, 0x4b, 0xdc, 0x3b,
	0x3e, 0x18, 0x47, 0xdf, 0xab, 0x2e, 0x07, 0xda, 0x8f, 0x79, 0x86, 0xff,
	0xa0, 0xb9, 0x3a, 0x72, 0xe4, 0xe2, 0x27, 0x4c, 0x0e, 0x2b, 0x79, 0xb9,
	0x87, 0x57, 0x0a, 0x8d, 0x6e, 0x84, 0x55, 0x90, 0x98, 0x30, 0xae, 0xdd,
	0xc5, 0xc2, 0x82, 0x05, 0xd8, 0x0f, 0xf4, 0x79, 0x0a, 0xaf, 0xd8, 0x24,
	0x00, 0xed, 0x8f, 0xf0, 0x62, 0x99, 0x19, 0x65, 0x5d, 0x20, 0x06, 0xad,
	0x41, 0xaf, 0xb5, 0x20, 0x3a, 0x6d, 0xea, 0xac, 0xa8, 0xad, 0x5c, 0x1d,
	0xcb, 0x4d, 0x71, 0x75, 0x6f, 0x09, 0x91, 0xf9, 0x3a, 0xc6, 0x31, 0x17,
	0x99, 0x54, 0x10, 0xf8, 0x74, 0x1d, 0x16, 0xbe, 0x8e, 0x2a, 0x12, 0x0d,
	0xdf, 0x87, 0x57, 0x5a, 0xad, 0x3e, 0xd2, 0xaa, 0xfa, 0x10, 0x94, 0x82,
	0x79, 0xe5, 0x4b, 0x1f, 0xdf, 0xa0, 0xbc, 0x64, 0xcb, 0xca, 0xa3, 0x3a,
	0xe4, 0xf4, 0x38, 0xe2, 0x28, 0x73, 0x95, 0x35, 0xf1, 0x40, 0xa8, 0xca,
	0x6c, 0x0b, 0xec, 0x85, 0x78, 0x22, 0xaf, 0xb2, 0xe2, 0x97, 0xdc, 0x38,
	0x2f, 0x66, 0xef, 0x33, 0x27, 0x26, 0x8d, 0x07, 0x2a, 0x5d, 0xa3, 0x02,
	0x3b, 0xa0, 0x65, 0x63, 0x6f, 0x22, 0xf8, 0x53, 0x8b, 0xcd, 0xb7, 0xc8,
	0xd6, 0xf1, 0x2a, 0xc4, 0x08, 0x68, 0xb6, 0x87, 0x00, 0x00,
}
