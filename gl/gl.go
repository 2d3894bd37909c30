// SPDX-License-Identifier: Unlicense OR MIT

// Package gl is the OpenGL entry-point table of an acquired context.
package gl

type (
	Attrib uint
	Enum   uint
)

const (
	ARRAY_BUFFER                  = 0x8892
	BLEND                         = 0xbe2
	COLOR_ATTACHMENT0             = 0x8ce0
	COLOR_BUFFER_BIT              = 0x4000
	COMPILE_STATUS                = 0x8b81
	DEBUG_OUTPUT                  = 0x92e0
	DEBUG_OUTPUT_SYNCHRONOUS      = 0x8242
	DEPTH_BUFFER_BIT              = 0x100
	DRAW_FRAMEBUFFER              = 0x8ca9
	EXTENSIONS                    = 0x1f03
	FALSE                         = 0
	FLOAT                         = 0x1406
	FRAGMENT_SHADER               = 0x8b30
	FRAMEBUFFER                   = 0x8d40
	FRAMEBUFFER_COMPLETE          = 0x8cd5
	FRAMEBUFFER_SRGB              = 0x8db9
	INFO_LOG_LENGTH               = 0x8b84
	LINEAR                        = 0x2601
	LINK_STATUS                   = 0x8b82
	MAJOR_VERSION                 = 0x821b
	MAX_SAMPLES                   = 0x8d57
	MINOR_VERSION                 = 0x821c
	MULTISAMPLE                   = 0x809d
	NEAREST                       = 0x2600
	NO_ERROR                      = 0x0
	NUM_EXTENSIONS                = 0x821d
	PACK_ALIGNMENT                = 0x0d05
	READ_FRAMEBUFFER              = 0x8ca8
	RENDERBUFFER                  = 0x8d41
	RENDERER                      = 0x1f01
	RGBA                          = 0x1908
	RGBA8                         = 0x8058
	SAMPLES                       = 0x80a9
	SHADING_LANGUAGE_VERSION      = 0x8b8c
	STATIC_DRAW                   = 0x88e4
	STENCIL_BUFFER_BIT            = 0x00000400
	TEXTURE_2D                    = 0xde1
	TEXTURE_2D_MULTISAMPLE        = 0x9100
	TRIANGLES                     = 0x4
	TRUE                          = 1
	UNSIGNED_BYTE                 = 0x1401
	VENDOR                        = 0x1f00
	VERSION                       = 0x1f02
	VERTEX_SHADER                 = 0x8b31
	DEBUG_SEVERITY_NOTIFICATION   = 0x826b
	DEBUG_SEVERITY_HIGH           = 0x9146
	DEBUG_SEVERITY_MEDIUM         = 0x9147
	DEBUG_SEVERITY_LOW            = 0x9148
	DEBUG_SOURCE_API              = 0x8246
	DEBUG_TYPE_ERROR              = 0x824c
	CONTEXT_FLAGS                 = 0x821e
	CONTEXT_FLAG_DEBUG_BIT        = 0x00000002
	INVALID_ENUM                  = 0x0500
	INVALID_VALUE                 = 0x0501
	INVALID_OPERATION             = 0x0502
	OUT_OF_MEMORY                 = 0x0505
	INVALID_FRAMEBUFFER_OPERATION = 0x0506
	MAX_TEXTURE_SIZE              = 0xd33
	MAX_RENDERBUFFER_SIZE         = 0x84e8
	MAX_COLOR_TEXTURE_SAMPLES     = 0x910e
)
