package png

// rfc1951Deflate is a dynamic-Huffman DEFLATE stream holding the first 1000
// characters of the RFC 1951 text.
var rfc1951Deflate = []byte{
	0x8d, 0x93, 0x4f, 0x6b, 0xe3, 0x40, 0x0c, 0xc5, 0xef, 0xfe, 0x14, 0x3a, 0xee, 0x42, 0x08, 0x84,
	0xb2, 0x85, 0xe6, 0x56, 0x92, 0xb4, 0x14, 0xda, 0x12, 0x9a, 0xc2, 0x9e, 0xa7, 0x1e, 0xc5, 0x16,
	0x1d, 0x8f, 0xdc, 0x19, 0x4d, 0x8a, 0xbf, 0xfd, 0x4a, 0x93, 0x3f, 0xdd, 0xbd, 0x2c, 0xf5, 0x21,
	0x66, 0x6c, 0xeb, 0xbd, 0x9f, 0xf4, 0x94, 0xa6, 0xb1, 0xeb, 0x19, 0xe5, 0x93, 0xd3, 0x3b, 0xfc,
	0xd6, 0x1f, 0x8a, 0x1d, 0xdc, 0x27, 0x2e, 0x23, 0x7c, 0xf7, 0xda, 0xce, 0x61, 0x8d, 0x45, 0x72,
	0xdb, 0x37, 0x2f, 0xf8, 0x51, 0x30, 0x0b, 0xec, 0x39, 0xc1, 0x8a, 0x87, 0x01, 0xa3, 0xe4, 0x25,
	0x2c, 0x6e, 0x7e, 0x2d, 0xfe, 0x53, 0x7f, 0x1b, 0x9c, 0xf7, 0x14, 0x61, 0x13, 0x05, 0xd3, 0x98,
	0x28, 0x63, 0x6e, 0x56, 0x4e, 0xb0, 0xe3, 0x34, 0x2d, 0xe1, 0x21, 0xaa, 0xd8, 0xe0, 0x84, 0x38,
	0xba, 0xf0, 0x6d, 0xa6, 0x27, 0x37, 0xa9, 0xed, 0xcd, 0xb5, 0x36, 0x77, 0x7e, 0xb4, 0xde, 0xdc,
	0x3d, 0xde, 0xbe, 0x6e, 0x8c, 0x6b, 0x4c, 0x98, 0x33, 0x7a, 0x58, 0x3b, 0x71, 0x70, 0x57, 0xe5,
	0x61, 0x37, 0x62, 0x4b, 0x7b, 0x6a, 0xab, 0x13, 0x1c, 0x30, 0x65, 0xbb, 0x2f, 0xe6, 0x57, 0x4d,
	0xb3, 0x13, 0x27, 0x25, 0x03, 0xef, 0xe1, 0xb5, 0xa7, 0x0c, 0x4f, 0x38, 0x70, 0x95, 0xad, 0xa7,
	0x41, 0x4f, 0x30, 0x26, 0x3e, 0x90, 0xc7, 0x0c, 0xf4, 0x45, 0x5b, 0x87, 0x20, 0x3d, 0x6a, 0x07,
	0xda, 0x57, 0x44, 0x81, 0x56, 0x27, 0x52, 0x22, 0xc9, 0x34, 0xff, 0xab, 0xd6, 0x84, 0x3c, 0x6b,
	0x69, 0x64, 0x81, 0x5c, 0x21, 0x26, 0x70, 0xf1, 0xab, 0x2a, 0x8b, 0x8b, 0xde, 0x25, 0x6f, 0xfe,
	0x2e, 0x4e, 0xa0, 0x09, 0x79, 0x15, 0x58, 0x53, 0x96, 0x44, 0x6f, 0xa5, 0x5a, 0xf1, 0xde, 0x64,
	0xe4, 0xc2, 0xa3, 0xf7, 0x12, 0x03, 0x0d, 0x24, 0xe8, 0xe7, 0x4d, 0xf3, 0xb0, 0xd9, 0xdd, 0xc3,
	0x33, 0x0b, 0x2e, 0x4f, 0xdc, 0x0a, 0x65, 0x8f, 0xc4, 0xbd, 0x57, 0x63, 0x18, 0x39, 0xd3, 0x51,
	0x28, 0x56, 0xe4, 0x83, 0x0b, 0xe4, 0x15, 0xf4, 0xec, 0x69, 0x30, 0x21, 0x60, 0x2b, 0xc5, 0x05,
	0x53, 0xd8, 0x26, 0x1e, 0x31, 0xe9, 0xfb, 0x17, 0xea, 0x7a, 0xc9, 0xc6, 0x28, 0x58, 0xd3, 0xd6,
	0x26, 0xa3, 0x38, 0x8a, 0x3a, 0x5d, 0x8a, 0x47, 0x22, 0xcf, 0x6d, 0xb1, 0x77, 0x0a, 0xa2, 0x0c,
	0xd4, 0x6a, 0xbc, 0xa6, 0xb1, 0xe2, 0x71, 0x4a, 0x56, 0x0e, 0x3f, 0xda, 0x9f, 0x35, 0x2c, 0x78,
	0x9c, 0xc3, 0x16, 0xb5, 0xed, 0xcb, 0x3e, 0x55, 0x2f, 0x4c, 0x03, 0xe5, 0x9a, 0x86, 0x8a, 0x75,
	0xc9, 0x29, 0x8b, 0x07, 0x61, 0x75, 0x1a, 0x6d, 0x52, 0x1e, 0xfc, 0x79, 0x14, 0xf8, 0xaf, 0x61,
	0x4d, 0x40, 0xf1, 0x4d, 0x65, 0x2c, 0x49, 0x9b, 0xc4, 0xfa, 0xfd, 0x27, 0x49, 0xcf, 0x45, 0xf3,
	0xe8, 0x5d, 0xea, 0x70, 0xa6, 0xa0, 0x6d, 0x28, 0xde, 0x16, 0x5f, 0x54, 0x3d, 0x87, 0x1a, 0x9f,
	0x65, 0xa9, 0x26, 0xac, 0xe3, 0x48, 0x26, 0x10, 0x5c, 0xec, 0x8a, 0xeb, 0x74, 0x5e, 0x26, 0xa1,
	0x25, 0xac, 0x82, 0xe9, 0x98, 0x74, 0xfd, 0x52, 0xd3, 0x1d, 0xe9, 0x54, 0x3b, 0x3b, 0x6f, 0x84,
	0x82, 0xf6, 0xba, 0x5c, 0x2a, 0x62, 0x1a, 0xed, 0xa5, 0xe5, 0x58, 0x07, 0x51, 0xa5, 0x2a, 0xf2,
	0xf9, 0x9c, 0x10, 0x6c, 0x39, 0x31, 0x1d, 0xd0, 0xcf, 0x4e, 0xaf, 0xb5, 0xfe, 0xd4, 0x44, 0x2e,
	0x6f, 0xb6, 0x0d, 0x42, 0x07, 0x34, 0xf8, 0x68, 0x34, 0xda, 0xa2, 0xc7, 0x80, 0x47, 0xe4, 0x7d,
	0xe2, 0xa1, 0x06, 0xc8, 0x6a, 0x43, 0xf6, 0x87, 0x31, 0xc5, 0x36, 0xe0, 0x1f,
}

// rfc1951Text is the expected decompressed output.
const rfc1951Text = "\n\n\n\n\n\n" +
	`Network Working Group                                         P. Deutsch
Request for Comments: 1951                           Aladdin Enterprises
Category: Informational                                         May 1996


        DEFLATE Compressed Data Format Specification version 1.3

Status of This Memo

   This memo provides information for the Internet community.  This memo
   does not specify an Internet standard of any kind.  Distribution of
   this memo is unlimited.

IESG Note:

   The IESG takes no position on the validity of any Intellectual
   Property Rights statements contained in this document.

Notices

   Copyright (c) 1996 L. Peter Deutsch

   Permission is granted to copy and distribute this document for any
   purpose and without charge, including translations into other
   languages and incorporation into compilations, provided that the
   copyright notice and this notice are preserved, and that any
   substantive changes or deletions from the original are cle`
