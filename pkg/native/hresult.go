package native

import "fmt"

// HRESULT is a COM status value.
type HRESULT uint32

const (
	FacilityWin32 = 7

	SOk           HRESULT = 0x00000000
	SFalse        HRESULT = 0x00000001
	ENotImpl      HRESULT = 0x80004001
	ENoInterface  HRESULT = 0x80004002
	EPointer      HRESULT = 0x80004003
	EAbort        HRESULT = 0x80004004
	EFail         HRESULT = 0x80004005
	EUnexpected   HRESULT = 0x8000FFFF
	EAccessDenied HRESULT = 0x80070005
	EHandle       HRESULT = 0x80070006
	EOutOfMemory  HRESULT = 0x8007000E
	EInvalidArg   HRESULT = 0x80070057
)

// HRESULTFromWin32 wraps a Win32 code the way HRESULT_FROM_WIN32 does.
func HRESULTFromWin32(c Code) HRESULT {
	if int32(c) <= 0 {
		return HRESULT(c)
	}
	return HRESULT(uint32(c)&0xFFFF | FacilityWin32<<16 | 0x80000000)
}

// Failed reports whether the severity bit is set.
func (h HRESULT) Failed() bool { return h&0x80000000 != 0 }

// Facility returns the facility field.
func (h HRESULT) Facility() int { return int(h>>16) & 0x1FFF }

// Win32 returns the wrapped Win32 code when h belongs to FacilityWin32.
func (h HRESULT) Win32() (Code, bool) {
	if h.Failed() && h.Facility() == FacilityWin32 {
		return Code(h & 0xFFFF), true
	}
	return 0, false
}

func (h HRESULT) Error() string {
	return fmt.Sprintf("native: HRESULT 0x%08X", uint32(h))
}
