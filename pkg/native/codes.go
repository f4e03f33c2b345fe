package native

import (
	"fmt"
	"syscall"
)

// Code is a native error identifier, as returned by GetLastError or
// WSAGetLastError.
//
// Code implements error so backends can return it directly. It is never
// exposed to emulated callers: the translate package converts it to an
// errno.Errno at the boundary.
type Code uint32

// ErrnoFlag marks a Code that carries a POSIX errno value unchanged. It is the
// Win32 "customer code" bit, which the OS never sets on its own codes.
const ErrnoFlag Code = 1 << 29

// FromErrno wraps a POSIX errno value produced by a native call that already
// reports errors in the POSIX namespace (the C runtime's stat, chdir, ...).
func FromErrno(e int) Code {
	return ErrnoFlag | Code(uint16(e))
}

// Errno returns the POSIX value carried by c and whether c is a pass-through
// code built by FromErrno.
func (c Code) Errno() (int, bool) {
	if c&ErrnoFlag == 0 {
		return 0, false
	}
	return int(c &^ ErrnoFlag), true
}

// Error implements error.
func (c Code) Error() string {
	if e, ok := c.Errno(); ok {
		return fmt.Sprintf("native: errno %d", e)
	}
	if name, ok := codeNames[c]; ok {
		return fmt.Sprintf("native: %s (%d)", name, uint32(c))
	}
	return fmt.Sprintf("native: error %d", uint32(c))
}

// Name returns the symbolic name of c, or an empty string.
func (c Code) Name() string {
	return codeNames[c]
}

// Is matches a Code against a syscall.Errno carrying the same number, which
// is how the Go runtime reports Win32 errors on Windows hosts.
func (c Code) Is(target error) bool {
	if t, ok := target.(syscall.Errno); ok {
		return uint32(t) == uint32(c)
	}
	return false
}

// Win32 error codes.
const (
	ErrorSuccess                   Code = 0
	ErrorInvalidFunction           Code = 1
	ErrorFileNotFound              Code = 2
	ErrorPathNotFound              Code = 3
	ErrorTooManyOpenFiles          Code = 4
	ErrorAccessDenied              Code = 5
	ErrorInvalidHandle             Code = 6
	ErrorArenaTrashed              Code = 7
	ErrorNotEnoughMemory           Code = 8
	ErrorInvalidBlock              Code = 9
	ErrorBadEnvironment            Code = 10
	ErrorBadFormat                 Code = 11
	ErrorInvalidAccess             Code = 12
	ErrorInvalidData               Code = 13
	ErrorOutOfMemory               Code = 14
	ErrorInvalidDrive              Code = 15
	ErrorCurrentDirectory          Code = 16
	ErrorNotSameDevice             Code = 17
	ErrorNoMoreFiles               Code = 18
	ErrorWriteProtect              Code = 19
	ErrorBadUnit                   Code = 20
	ErrorNotReady                  Code = 21
	ErrorBadCommand                Code = 22
	ErrorCRC                       Code = 23
	ErrorBadLength                 Code = 24
	ErrorSeek                      Code = 25
	ErrorNotDOSDisk                Code = 26
	ErrorSectorNotFound            Code = 27
	ErrorWriteFault                Code = 29
	ErrorReadFault                 Code = 30
	ErrorGenFailure                Code = 31
	ErrorSharingViolation          Code = 32
	ErrorLockViolation             Code = 33
	ErrorWrongDisk                 Code = 34
	ErrorSharingBufferExceeded     Code = 36
	ErrorHandleEOF                 Code = 38
	ErrorHandleDiskFull            Code = 39
	ErrorNotSupported              Code = 50
	ErrorRemNotList                Code = 51
	ErrorDupName                   Code = 52
	ErrorBadNetpath                Code = 53
	ErrorNetworkBusy               Code = 54
	ErrorDevNotExist               Code = 55
	ErrorBadNetResp                Code = 58
	ErrorUnexpNetErr               Code = 59
	ErrorNetnameDeleted            Code = 64
	ErrorNetworkAccessDenied       Code = 65
	ErrorBadNetName                Code = 67
	ErrorFileExists                Code = 80
	ErrorCannotMake                Code = 82
	ErrorInvalidParameter          Code = 87
	ErrorNoProcSlots               Code = 89
	ErrorInvalidAtInterruptTime    Code = 104
	ErrorBrokenPipe                Code = 109
	ErrorOpenFailed                Code = 110
	ErrorBufferOverflow            Code = 111
	ErrorDiskFull                  Code = 112
	ErrorNoMoreSearchHandles       Code = 113
	ErrorCallNotImplemented        Code = 120
	ErrorSemTimeout                Code = 121
	ErrorInsufficientBuffer        Code = 122
	ErrorInvalidName               Code = 123
	ErrorModNotFound               Code = 126
	ErrorProcNotFound              Code = 127
	ErrorWaitNoChildren            Code = 128
	ErrorChildNotComplete          Code = 129
	ErrorDirectAccessHandle        Code = 130
	ErrorNegativeSeek              Code = 131
	ErrorSeekOnDevice              Code = 132
	ErrorDirNotEmpty               Code = 145
	ErrorPathBusy                  Code = 148
	ErrorSignalRefused             Code = 156
	ErrorNotLocked                 Code = 158
	ErrorBadPathname               Code = 161
	ErrorSignalPending             Code = 162
	ErrorMaxThrdsReached           Code = 164
	ErrorLockFailed                Code = 167
	ErrorBusy                      Code = 170
	ErrorAlreadyExists             Code = 183
	ErrorInvalidExeSignature       Code = 191
	ErrorExeMarkedInvalid          Code = 192
	ErrorBadExeFormat              Code = 193
	ErrorIOPLNotEnabled            Code = 197
	ErrorNoSignalSent              Code = 205
	ErrorFilenameExcedRange        Code = 206
	ErrorMetaExpansionTooLong      Code = 208
	ErrorInvalidSignalNumber       Code = 209
	ErrorThread1Inactive           Code = 210
	ErrorExeMachineTypeMismatch    Code = 216
	ErrorBadPipe                   Code = 230
	ErrorPipeBusy                  Code = 231
	ErrorNoData                    Code = 232
	ErrorPipeNotConnected          Code = 233
	ErrorMoreData                  Code = 234
	ErrorInvalidEAName             Code = 254
	ErrorEAListInconsistent        Code = 255
	ErrorNoMoreItems               Code = 259
	ErrorDirectory                 Code = 267
	ErrorEAsDidntFit               Code = 275
	ErrorEATableFull               Code = 277
	ErrorEAsNotSupported           Code = 282
	ErrorNotOwner                  Code = 288
	ErrorInvalidAddress            Code = 487
	ErrorPipeConnected             Code = 535
	ErrorPipeListening             Code = 536
	ErrorStoppedOnSymlink          Code = 681
	ErrorIOIncomplete              Code = 996
	ErrorIOPending                 Code = 997
	ErrorNoAccess                  Code = 998
	ErrorFileInvalid               Code = 1006
	ErrorNoToken                   Code = 1008
	ErrorProcessAborted            Code = 1067
	ErrorEndOfMedia                Code = 1100
	ErrorFilemarkDetected          Code = 1101
	ErrorBeginningOfMedia          Code = 1102
	ErrorSetmarkDetected           Code = 1103
	ErrorNoDataDetected            Code = 1104
	ErrorInvalidBlockLength        Code = 1106
	ErrorBusReset                  Code = 1111
	ErrorNoMediaInDrive            Code = 1112
	ErrorNoUnicodeTranslation      Code = 1113
	ErrorIODevice                  Code = 1117
	ErrorEOMOverflow               Code = 1129
	ErrorPossibleDeadlock          Code = 1131
	ErrorTooManyLinks              Code = 1142
	ErrorDeviceRequiresCleaning    Code = 1165
	ErrorDeviceDoorOpen            Code = 1166
	ErrorBadDevice                 Code = 1200
	ErrorCancelled                 Code = 1223
	ErrorPrivilegeNotHeld          Code = 1314
	ErrorNoneMapped                Code = 1332
	ErrorFileCorrupt               Code = 1392
	ErrorDiskCorrupt               Code = 1393
	ErrorNoSystemResources         Code = 1450
	ErrorNonpagedSystemResources   Code = 1451
	ErrorPagedSystemResources      Code = 1452
	ErrorWorkingSetQuota           Code = 1453
	ErrorPagefileQuota             Code = 1454
	ErrorCommitmentLimit           Code = 1455
	ErrorTimeout                   Code = 1460
	ErrorSymlinkNotSupported       Code = 1464
	ErrorCantResolveFilename       Code = 1921
	ErrorBadUsername               Code = 2202
	ErrorNotConnected              Code = 2250
	ErrorOpenFiles                 Code = 2401
	ErrorActiveConnections         Code = 2402
	ErrorDeviceInUse               Code = 2404
	ErrorNotAReparsePoint          Code = 4390
	ErrorInvalidReparseData        Code = 4392
	ErrorReparseTagInvalid         Code = 4393
	ErrorSxsCantGenActctx          Code = 14001
)

// Winsock error codes.
const (
	WSAEINTR           Code = 10004
	WSAEBADF           Code = 10009
	WSAEACCES          Code = 10013
	WSAEFAULT          Code = 10014
	WSAEINVAL          Code = 10022
	WSAEMFILE          Code = 10024
	WSAEWOULDBLOCK     Code = 10035
	WSAEINPROGRESS     Code = 10036
	WSAEALREADY        Code = 10037
	WSAENOTSOCK        Code = 10038
	WSAEDESTADDRREQ    Code = 10039
	WSAEMSGSIZE        Code = 10040
	WSAEPROTOTYPE      Code = 10041
	WSAENOPROTOOPT     Code = 10042
	WSAEPROTONOSUPPORT Code = 10043
	WSAESOCKTNOSUPPORT Code = 10044
	WSAEOPNOTSUPP      Code = 10045
	WSAEPFNOSUPPORT    Code = 10046
	WSAEAFNOSUPPORT    Code = 10047
	WSAEADDRINUSE      Code = 10048
	WSAEADDRNOTAVAIL   Code = 10049
	WSAENETDOWN        Code = 10050
	WSAENETUNREACH     Code = 10051
	WSAENETRESET       Code = 10052
	WSAECONNABORTED    Code = 10053
	WSAECONNRESET      Code = 10054
	WSAENOBUFS         Code = 10055
	WSAEISCONN         Code = 10056
	WSAENOTCONN        Code = 10057
	WSAESHUTDOWN       Code = 10058
	WSAETOOMANYREFS    Code = 10059
	WSAETIMEDOUT       Code = 10060
	WSAECONNREFUSED    Code = 10061
	WSAELOOP           Code = 10062
	WSAENAMETOOLONG    Code = 10063
	WSAEHOSTDOWN       Code = 10064
	WSAEHOSTUNREACH    Code = 10065
	WSAENOTEMPTY       Code = 10066
	WSAEPROCLIM        Code = 10067
	WSAEUSERS          Code = 10068
	WSAEDQUOT          Code = 10069
	WSAESTALE          Code = 10070
	WSAEREMOTE         Code = 10071
	WSASYSNOTREADY     Code = 10091
	WSAVERNOTSUPPORTED Code = 10092
	WSANOTINITIALISED  Code = 10093
	WSAEDISCON         Code = 10101
	WSAHOST_NOT_FOUND  Code = 11001
	WSATRY_AGAIN       Code = 11002
	WSANO_RECOVERY     Code = 11003
	WSANO_DATA         Code = 11004
)
