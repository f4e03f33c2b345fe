package translate

import (
	"github.com/marmos91/posixshim/pkg/errno"
	"github.com/marmos91/posixshim/pkg/native"
)

// nativeTable maps native-only codes to their nearest POSIX equivalent.
// Entries follow the Cygwin errmap so programs see the same errno values on
// both emulation layers. The default, ESTALE, applies only to codes this
// table does not list: ERROR_SHARING_VIOLATION is listed and always yields
// EBUSY.
var nativeTable = map[native.Code]errno.Errno{
	native.ErrorInvalidFunction:         errno.EBADRQC,
	native.ErrorFileNotFound:            errno.ENOENT,
	native.ErrorPathNotFound:            errno.ENOENT,
	native.ErrorTooManyOpenFiles:        errno.EMFILE,
	native.ErrorAccessDenied:            errno.EACCES,
	native.ErrorInvalidHandle:           errno.EBADF,
	native.ErrorNotEnoughMemory:         errno.ENOMEM,
	native.ErrorInvalidData:             errno.EINVAL,
	native.ErrorOutOfMemory:             errno.ENOMEM,
	native.ErrorInvalidDrive:            errno.ENODEV,
	native.ErrorNotSameDevice:           errno.EXDEV,
	native.ErrorNoMoreFiles:             errno.ENMFILE,
	native.ErrorWriteProtect:            errno.EROFS,
	native.ErrorBadUnit:                 errno.ENODEV,
	native.ErrorNotReady:                errno.ENOMEDIUM,
	native.ErrorCRC:                     errno.EIO,
	native.ErrorSeek:                    errno.EINVAL,
	native.ErrorSectorNotFound:          errno.EINVAL,
	native.ErrorSharingViolation:        errno.EBUSY,
	native.ErrorLockViolation:           errno.EBUSY,
	native.ErrorSharingBufferExceeded:   errno.ENOLCK,
	native.ErrorHandleEOF:               errno.ENODATA,
	native.ErrorHandleDiskFull:          errno.ENOSPC,
	native.ErrorNotSupported:            errno.ENOSYS,
	native.ErrorRemNotList:              errno.ENONET,
	native.ErrorDupName:                 errno.ENOTUNIQ,
	native.ErrorBadNetpath:              errno.ENOENT,
	native.ErrorDevNotExist:             errno.ENOENT,
	native.ErrorBadNetResp:              errno.ENOSYS,
	native.ErrorUnexpNetErr:             errno.EIO,
	native.ErrorNetnameDeleted:          errno.ENOENT,
	native.ErrorBadNetName:              errno.ENOENT,
	native.ErrorFileExists:              errno.EEXIST,
	native.ErrorCannotMake:              errno.EPERM,
	native.ErrorInvalidParameter:        errno.EINVAL,
	native.ErrorNoProcSlots:             errno.EAGAIN,
	native.ErrorInvalidAtInterruptTime:  errno.EINTR,
	native.ErrorBrokenPipe:              errno.EPIPE,
	native.ErrorOpenFailed:              errno.EIO,
	native.ErrorBufferOverflow:          errno.ENAMETOOLONG,
	native.ErrorDiskFull:                errno.ENOSPC,
	native.ErrorNoMoreSearchHandles:     errno.ENFILE,
	native.ErrorCallNotImplemented:      errno.ENOSYS,
	native.ErrorInsufficientBuffer:      errno.ERANGE,
	native.ErrorInvalidName:             errno.ENOENT,
	native.ErrorModNotFound:             errno.ENOENT,
	native.ErrorProcNotFound:            errno.ESRCH,
	native.ErrorWaitNoChildren:          errno.ECHILD,
	native.ErrorChildNotComplete:        errno.EBUSY,
	native.ErrorDirectAccessHandle:      errno.EBADF,
	native.ErrorNegativeSeek:            errno.EINVAL,
	native.ErrorSeekOnDevice:            errno.ESPIPE,
	native.ErrorDirNotEmpty:             errno.ENOTEMPTY,
	native.ErrorPathBusy:                errno.EBUSY,
	native.ErrorSignalRefused:           errno.EIO,
	native.ErrorNotLocked:               errno.ENOLCK,
	native.ErrorBadPathname:             errno.ENOENT,
	native.ErrorSignalPending:           errno.EBUSY,
	native.ErrorMaxThrdsReached:         errno.EAGAIN,
	native.ErrorLockFailed:              errno.EACCES,
	native.ErrorBusy:                    errno.EBUSY,
	native.ErrorAlreadyExists:           errno.EEXIST,
	native.ErrorInvalidExeSignature:     errno.ENOEXEC,
	native.ErrorExeMarkedInvalid:        errno.ENOEXEC,
	native.ErrorBadExeFormat:            errno.ENOEXEC,
	native.ErrorIOPLNotEnabled:          errno.ENOEXEC,
	native.ErrorNoSignalSent:            errno.EIO,
	native.ErrorFilenameExcedRange:      errno.ENAMETOOLONG,
	native.ErrorMetaExpansionTooLong:    errno.EINVAL,
	native.ErrorInvalidSignalNumber:     errno.EINVAL,
	native.ErrorThread1Inactive:         errno.EINVAL,
	native.ErrorExeMachineTypeMismatch:  errno.ENOEXEC,
	native.ErrorBadPipe:                 errno.EINVAL,
	native.ErrorPipeBusy:                errno.EBUSY,
	native.ErrorNoData:                  errno.EPIPE,
	native.ErrorPipeNotConnected:        errno.ECOMM,
	native.ErrorMoreData:                errno.EMSGSIZE,
	native.ErrorInvalidEAName:           errno.EINVAL,
	native.ErrorEAListInconsistent:      errno.EINVAL,
	native.ErrorNoMoreItems:             errno.ENMFILE,
	native.ErrorDirectory:               errno.ENOTDIR,
	native.ErrorEAsDidntFit:             errno.ENOSPC,
	native.ErrorEATableFull:             errno.ENOSPC,
	native.ErrorEAsNotSupported:         errno.ENOTSUP,
	native.ErrorNotOwner:                errno.EPERM,
	native.ErrorInvalidAddress:          errno.EINVAL,
	native.ErrorPipeConnected:           errno.EBUSY,
	native.ErrorPipeListening:           errno.ECOMM,
	native.ErrorStoppedOnSymlink:        errno.ELOOP,
	native.ErrorIOIncomplete:            errno.EAGAIN,
	native.ErrorIOPending:               errno.EAGAIN,
	native.ErrorNoAccess:                errno.EFAULT,
	native.ErrorFileInvalid:             errno.ENXIO,
	native.ErrorNoToken:                 errno.EINVAL,
	native.ErrorProcessAborted:          errno.EFAULT,
	native.ErrorEndOfMedia:              errno.ENOSPC,
	native.ErrorFilemarkDetected:        errno.EIO,
	native.ErrorBeginningOfMedia:        errno.EIO,
	native.ErrorSetmarkDetected:         errno.EIO,
	native.ErrorNoDataDetected:          errno.EIO,
	native.ErrorInvalidBlockLength:      errno.EIO,
	native.ErrorBusReset:                errno.EIO,
	native.ErrorNoMediaInDrive:          errno.ENOMEDIUM,
	native.ErrorNoUnicodeTranslation:    errno.EILSEQ,
	native.ErrorIODevice:                errno.EIO,
	native.ErrorEOMOverflow:             errno.EIO,
	native.ErrorPossibleDeadlock:        errno.EDEADLOCK,
	native.ErrorTooManyLinks:            errno.EMLINK,
	native.ErrorDeviceRequiresCleaning:  errno.EIO,
	native.ErrorDeviceDoorOpen:          errno.EIO,
	native.ErrorBadDevice:               errno.ENODEV,
	native.ErrorCancelled:               errno.EINTR,
	native.ErrorPrivilegeNotHeld:        errno.EPERM,
	native.ErrorNoneMapped:              errno.EINVAL,
	native.ErrorFileCorrupt:             errno.EEXIST,
	native.ErrorDiskCorrupt:             errno.EIO,
	native.ErrorNoSystemResources:       errno.EFBIG,
	native.ErrorNonpagedSystemResources: errno.EAGAIN,
	native.ErrorPagedSystemResources:    errno.EAGAIN,
	native.ErrorWorkingSetQuota:         errno.EAGAIN,
	native.ErrorPagefileQuota:           errno.EAGAIN,
	native.ErrorCommitmentLimit:         errno.EAGAIN,
	native.ErrorTimeout:                 errno.EBUSY,
	native.ErrorSymlinkNotSupported:     errno.EINVAL,
	native.ErrorCantResolveFilename:     errno.ELOOP,
	native.ErrorBadUsername:             errno.EINVAL,
	native.ErrorNotConnected:            errno.ENOLINK,
	native.ErrorOpenFiles:               errno.EAGAIN,
	native.ErrorActiveConnections:       errno.EAGAIN,
	native.ErrorDeviceInUse:             errno.EAGAIN,
	native.ErrorNotAReparsePoint:        errno.EINVAL,
	native.ErrorInvalidReparseData:      errno.EINVAL,
	native.ErrorReparseTagInvalid:       errno.EINVAL,
	native.ErrorSxsCantGenActctx:        errno.ELIBBAD,
}

// winsockTable maps socket error codes. Each WSAExxx code corresponds to the
// POSIX code of the same name.
var winsockTable = map[native.Code]errno.Errno{
	native.WSAEINTR:           errno.EINTR,
	native.WSAEBADF:           errno.EBADF,
	native.WSAEACCES:          errno.EACCES,
	native.WSAEFAULT:          errno.EFAULT,
	native.WSAEINVAL:          errno.EINVAL,
	native.WSAEMFILE:          errno.EMFILE,
	native.WSAEWOULDBLOCK:     errno.EWOULDBLOCK,
	native.WSAEINPROGRESS:     errno.EINPROGRESS,
	native.WSAEALREADY:        errno.EALREADY,
	native.WSAENOTSOCK:        errno.ENOTSOCK,
	native.WSAEDESTADDRREQ:    errno.EDESTADDRREQ,
	native.WSAEMSGSIZE:        errno.EMSGSIZE,
	native.WSAEPROTOTYPE:      errno.EPROTOTYPE,
	native.WSAENOPROTOOPT:     errno.ENOPROTOOPT,
	native.WSAEPROTONOSUPPORT: errno.EPROTONOSUPPORT,
	native.WSAESOCKTNOSUPPORT: errno.ESOCKTNOSUPPORT,
	native.WSAEOPNOTSUPP:      errno.EOPNOTSUPP,
	native.WSAEPFNOSUPPORT:    errno.EPFNOSUPPORT,
	native.WSAEAFNOSUPPORT:    errno.EAFNOSUPPORT,
	native.WSAEADDRINUSE:      errno.EADDRINUSE,
	native.WSAEADDRNOTAVAIL:   errno.EADDRNOTAVAIL,
	native.WSAENETDOWN:        errno.ENETDOWN,
	native.WSAENETUNREACH:     errno.ENETUNREACH,
	native.WSAENETRESET:       errno.ENETRESET,
	native.WSAECONNABORTED:    errno.ECONNABORTED,
	native.WSAECONNRESET:      errno.ECONNRESET,
	native.WSAENOBUFS:         errno.ENOBUFS,
	native.WSAEISCONN:         errno.EISCONN,
	native.WSAENOTCONN:        errno.ENOTCONN,
	native.WSAESHUTDOWN:       errno.ESHUTDOWN,
	native.WSAETOOMANYREFS:    errno.ETOOMANYREFS,
	native.WSAETIMEDOUT:       errno.ETIMEDOUT,
	native.WSAECONNREFUSED:    errno.ECONNREFUSED,
	native.WSAELOOP:           errno.ELOOP,
	native.WSAENAMETOOLONG:    errno.ENAMETOOLONG,
	native.WSAEHOSTDOWN:       errno.EHOSTDOWN,
	native.WSAEHOSTUNREACH:    errno.EHOSTUNREACH,
	native.WSAENOTEMPTY:       errno.ENOTEMPTY,
	native.WSAEPROCLIM:        errno.EPROCLIM,
	native.WSAEUSERS:          errno.EUSERS,
	native.WSAEDQUOT:          errno.EDQUOT,
	native.WSAESTALE:          errno.ESTALE,
	native.WSAEREMOTE:         errno.EREMOTE,
	native.WSASYSNOTREADY:     errno.ENETDOWN,
	native.WSAVERNOTSUPPORTED: errno.ENOSYS,
	native.WSANOTINITIALISED:  errno.ENETDOWN,
	native.WSAEDISCON:         errno.ESHUTDOWN,
}

// hostTable maps resolver codes onto h_errno. Resolver call sites consult it
// instead of the general tables: the two namespaces overlap numerically.
var hostTable = map[native.Code]errno.HostErrno{
	native.WSAHOST_NOT_FOUND:       errno.HostNotFound,
	native.WSATRY_AGAIN:            errno.TryAgain,
	native.WSANO_RECOVERY:          errno.NoRecovery,
	native.WSANO_DATA:              errno.NoData,
	native.ErrorFileNotFound:       errno.HostNotFound,
	native.ErrorBadNetpath:         errno.HostNotFound,
	native.ErrorBadNetName:         errno.HostNotFound,
	native.ErrorTimeout:            errno.TryAgain,
	native.ErrorSemTimeout:         errno.TryAgain,
	native.ErrorNetworkBusy:        errno.TryAgain,
	native.ErrorNotEnoughMemory:    errno.TryAgain,
	native.ErrorOutOfMemory:        errno.TryAgain,
	native.WSAETIMEDOUT:            errno.TryAgain,
	native.WSAENETDOWN:             errno.TryAgain,
	native.ErrorInvalidParameter:   errno.NoRecovery,
	native.ErrorNotSupported:       errno.NoRecovery,
	native.WSANOTINITIALISED:       errno.NoRecovery,
	native.ErrorNoData:             errno.NoAddress,
	native.ErrorNoMoreItems:        errno.NoAddress,
	native.ErrorInsufficientBuffer: errno.NoRecovery,
}

// hresultTable maps COM codes outside the Win32 facility.
var hresultTable = map[native.HRESULT]errno.Errno{
	native.ENotImpl:     errno.ENOSYS,
	native.ENoInterface: errno.ENOSYS,
	native.EPointer:     errno.EFAULT,
	native.EAbort:       errno.EINTR,
	native.EFail:        errno.EIO,
	native.EUnexpected:  errno.EIO,
}
