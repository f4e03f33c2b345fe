package native

var codeNames = map[Code]string{
	ErrorSuccess:                 "ERROR_SUCCESS",
	ErrorInvalidFunction:         "ERROR_INVALID_FUNCTION",
	ErrorFileNotFound:            "ERROR_FILE_NOT_FOUND",
	ErrorPathNotFound:            "ERROR_PATH_NOT_FOUND",
	ErrorTooManyOpenFiles:        "ERROR_TOO_MANY_OPEN_FILES",
	ErrorAccessDenied:            "ERROR_ACCESS_DENIED",
	ErrorInvalidHandle:           "ERROR_INVALID_HANDLE",
	ErrorArenaTrashed:            "ERROR_ARENA_TRASHED",
	ErrorNotEnoughMemory:         "ERROR_NOT_ENOUGH_MEMORY",
	ErrorInvalidBlock:            "ERROR_INVALID_BLOCK",
	ErrorBadEnvironment:          "ERROR_BAD_ENVIRONMENT",
	ErrorBadFormat:               "ERROR_BAD_FORMAT",
	ErrorInvalidAccess:           "ERROR_INVALID_ACCESS",
	ErrorInvalidData:             "ERROR_INVALID_DATA",
	ErrorOutOfMemory:             "ERROR_OUT_OF_MEMORY",
	ErrorInvalidDrive:            "ERROR_INVALID_DRIVE",
	ErrorCurrentDirectory:        "ERROR_CURRENT_DIRECTORY",
	ErrorNotSameDevice:           "ERROR_NOT_SAME_DEVICE",
	ErrorNoMoreFiles:             "ERROR_NO_MORE_FILES",
	ErrorWriteProtect:            "ERROR_WRITE_PROTECT",
	ErrorBadUnit:                 "ERROR_BAD_UNIT",
	ErrorNotReady:                "ERROR_NOT_READY",
	ErrorBadCommand:              "ERROR_BAD_COMMAND",
	ErrorCRC:                     "ERROR_CRC",
	ErrorBadLength:               "ERROR_BAD_LENGTH",
	ErrorSeek:                    "ERROR_SEEK",
	ErrorNotDOSDisk:              "ERROR_NOT_DOS_DISK",
	ErrorSectorNotFound:          "ERROR_SECTOR_NOT_FOUND",
	ErrorWriteFault:              "ERROR_WRITE_FAULT",
	ErrorReadFault:               "ERROR_READ_FAULT",
	ErrorGenFailure:              "ERROR_GEN_FAILURE",
	ErrorSharingViolation:        "ERROR_SHARING_VIOLATION",
	ErrorLockViolation:           "ERROR_LOCK_VIOLATION",
	ErrorWrongDisk:               "ERROR_WRONG_DISK",
	ErrorSharingBufferExceeded:   "ERROR_SHARING_BUFFER_EXCEEDED",
	ErrorHandleEOF:               "ERROR_HANDLE_EOF",
	ErrorHandleDiskFull:          "ERROR_HANDLE_DISK_FULL",
	ErrorNotSupported:            "ERROR_NOT_SUPPORTED",
	ErrorRemNotList:              "ERROR_REM_NOT_LIST",
	ErrorDupName:                 "ERROR_DUP_NAME",
	ErrorBadNetpath:              "ERROR_BAD_NETPATH",
	ErrorNetworkBusy:             "ERROR_NETWORK_BUSY",
	ErrorDevNotExist:             "ERROR_DEV_NOT_EXIST",
	ErrorBadNetResp:              "ERROR_BAD_NET_RESP",
	ErrorUnexpNetErr:             "ERROR_UNEXP_NET_ERR",
	ErrorNetnameDeleted:          "ERROR_NETNAME_DELETED",
	ErrorNetworkAccessDenied:     "ERROR_NETWORK_ACCESS_DENIED",
	ErrorBadNetName:              "ERROR_BAD_NET_NAME",
	ErrorFileExists:              "ERROR_FILE_EXISTS",
	ErrorCannotMake:              "ERROR_CANNOT_MAKE",
	ErrorInvalidParameter:        "ERROR_INVALID_PARAMETER",
	ErrorNoProcSlots:             "ERROR_NO_PROC_SLOTS",
	ErrorInvalidAtInterruptTime:  "ERROR_INVALID_AT_INTERRUPT_TIME",
	ErrorBrokenPipe:              "ERROR_BROKEN_PIPE",
	ErrorOpenFailed:              "ERROR_OPEN_FAILED",
	ErrorBufferOverflow:          "ERROR_BUFFER_OVERFLOW",
	ErrorDiskFull:                "ERROR_DISK_FULL",
	ErrorNoMoreSearchHandles:     "ERROR_NO_MORE_SEARCH_HANDLES",
	ErrorCallNotImplemented:      "ERROR_CALL_NOT_IMPLEMENTED",
	ErrorSemTimeout:              "ERROR_SEM_TIMEOUT",
	ErrorInsufficientBuffer:      "ERROR_INSUFFICIENT_BUFFER",
	ErrorInvalidName:             "ERROR_INVALID_NAME",
	ErrorModNotFound:             "ERROR_MOD_NOT_FOUND",
	ErrorProcNotFound:            "ERROR_PROC_NOT_FOUND",
	ErrorWaitNoChildren:          "ERROR_WAIT_NO_CHILDREN",
	ErrorChildNotComplete:        "ERROR_CHILD_NOT_COMPLETE",
	ErrorDirectAccessHandle:      "ERROR_DIRECT_ACCESS_HANDLE",
	ErrorNegativeSeek:            "ERROR_NEGATIVE_SEEK",
	ErrorSeekOnDevice:            "ERROR_SEEK_ON_DEVICE",
	ErrorDirNotEmpty:             "ERROR_DIR_NOT_EMPTY",
	ErrorPathBusy:                "ERROR_PATH_BUSY",
	ErrorSignalRefused:           "ERROR_SIGNAL_REFUSED",
	ErrorNotLocked:               "ERROR_NOT_LOCKED",
	ErrorBadPathname:             "ERROR_BAD_PATHNAME",
	ErrorSignalPending:           "ERROR_SIGNAL_PENDING",
	ErrorMaxThrdsReached:         "ERROR_MAX_THRDS_REACHED",
	ErrorLockFailed:              "ERROR_LOCK_FAILED",
	ErrorBusy:                    "ERROR_BUSY",
	ErrorAlreadyExists:           "ERROR_ALREADY_EXISTS",
	ErrorInvalidExeSignature:     "ERROR_INVALID_EXE_SIGNATURE",
	ErrorExeMarkedInvalid:        "ERROR_EXE_MARKED_INVALID",
	ErrorBadExeFormat:            "ERROR_BAD_EXE_FORMAT",
	ErrorIOPLNotEnabled:          "ERROR_IOPL_NOT_ENABLED",
	ErrorNoSignalSent:            "ERROR_NO_SIGNAL_SENT",
	ErrorFilenameExcedRange:      "ERROR_FILENAME_EXCED_RANGE",
	ErrorMetaExpansionTooLong:    "ERROR_META_EXPANSION_TOO_LONG",
	ErrorInvalidSignalNumber:     "ERROR_INVALID_SIGNAL_NUMBER",
	ErrorThread1Inactive:         "ERROR_THREAD_1_INACTIVE",
	ErrorExeMachineTypeMismatch:  "ERROR_EXE_MACHINE_TYPE_MISMATCH",
	ErrorBadPipe:                 "ERROR_BAD_PIPE",
	ErrorPipeBusy:                "ERROR_PIPE_BUSY",
	ErrorNoData:                  "ERROR_NO_DATA",
	ErrorPipeNotConnected:        "ERROR_PIPE_NOT_CONNECTED",
	ErrorMoreData:                "ERROR_MORE_DATA",
	ErrorInvalidEAName:           "ERROR_INVALID_EA_NAME",
	ErrorEAListInconsistent:      "ERROR_EA_LIST_INCONSISTENT",
	ErrorNoMoreItems:             "ERROR_NO_MORE_ITEMS",
	ErrorDirectory:               "ERROR_DIRECTORY",
	ErrorEAsDidntFit:             "ERROR_EAS_DIDNT_FIT",
	ErrorEATableFull:             "ERROR_EA_TABLE_FULL",
	ErrorEAsNotSupported:         "ERROR_EAS_NOT_SUPPORTED",
	ErrorNotOwner:                "ERROR_NOT_OWNER",
	ErrorInvalidAddress:          "ERROR_INVALID_ADDRESS",
	ErrorPipeConnected:           "ERROR_PIPE_CONNECTED",
	ErrorPipeListening:           "ERROR_PIPE_LISTENING",
	ErrorStoppedOnSymlink:        "ERROR_STOPPED_ON_SYMLINK",
	ErrorIOIncomplete:            "ERROR_IO_INCOMPLETE",
	ErrorIOPending:               "ERROR_IO_PENDING",
	ErrorNoAccess:                "ERROR_NO_ACCESS",
	ErrorFileInvalid:             "ERROR_FILE_INVALID",
	ErrorNoToken:                 "ERROR_NO_TOKEN",
	ErrorProcessAborted:          "ERROR_PROCESS_ABORTED",
	ErrorEndOfMedia:              "ERROR_END_OF_MEDIA",
	ErrorFilemarkDetected:        "ERROR_FILEMARK_DETECTED",
	ErrorBeginningOfMedia:        "ERROR_BEGINNING_OF_MEDIA",
	ErrorSetmarkDetected:         "ERROR_SETMARK_DETECTED",
	ErrorNoDataDetected:          "ERROR_NO_DATA_DETECTED",
	ErrorInvalidBlockLength:      "ERROR_INVALID_BLOCK_LENGTH",
	ErrorBusReset:                "ERROR_BUS_RESET",
	ErrorNoMediaInDrive:          "ERROR_NO_MEDIA_IN_DRIVE",
	ErrorNoUnicodeTranslation:    "ERROR_NO_UNICODE_TRANSLATION",
	ErrorIODevice:                "ERROR_IO_DEVICE",
	ErrorEOMOverflow:             "ERROR_EOM_OVERFLOW",
	ErrorPossibleDeadlock:        "ERROR_POSSIBLE_DEADLOCK",
	ErrorTooManyLinks:            "ERROR_TOO_MANY_LINKS",
	ErrorDeviceRequiresCleaning:  "ERROR_DEVICE_REQUIRES_CLEANING",
	ErrorDeviceDoorOpen:          "ERROR_DEVICE_DOOR_OPEN",
	ErrorBadDevice:               "ERROR_BAD_DEVICE",
	ErrorCancelled:               "ERROR_CANCELLED",
	ErrorPrivilegeNotHeld:        "ERROR_PRIVILEGE_NOT_HELD",
	ErrorNoneMapped:              "ERROR_NONE_MAPPED",
	ErrorFileCorrupt:             "ERROR_FILE_CORRUPT",
	ErrorDiskCorrupt:             "ERROR_DISK_CORRUPT",
	ErrorNoSystemResources:       "ERROR_NO_SYSTEM_RESOURCES",
	ErrorNonpagedSystemResources: "ERROR_NONPAGED_SYSTEM_RESOURCES",
	ErrorPagedSystemResources:    "ERROR_PAGED_SYSTEM_RESOURCES",
	ErrorWorkingSetQuota:         "ERROR_WORKING_SET_QUOTA",
	ErrorPagefileQuota:           "ERROR_PAGEFILE_QUOTA",
	ErrorCommitmentLimit:         "ERROR_COMMITMENT_LIMIT",
	ErrorTimeout:                 "ERROR_TIMEOUT",
	ErrorSymlinkNotSupported:     "ERROR_SYMLINK_NOT_SUPPORTED",
	ErrorCantResolveFilename:     "ERROR_CANT_RESOLVE_FILENAME",
	ErrorBadUsername:             "ERROR_BAD_USERNAME",
	ErrorNotConnected:            "ERROR_NOT_CONNECTED",
	ErrorOpenFiles:               "ERROR_OPEN_FILES",
	ErrorActiveConnections:       "ERROR_ACTIVE_CONNECTIONS",
	ErrorDeviceInUse:             "ERROR_DEVICE_IN_USE",
	ErrorNotAReparsePoint:        "ERROR_NOT_A_REPARSE_POINT",
	ErrorInvalidReparseData:      "ERROR_INVALID_REPARSE_DATA",
	ErrorReparseTagInvalid:       "ERROR_REPARSE_TAG_INVALID",
	ErrorSxsCantGenActctx:        "ERROR_SXS_CANT_GEN_ACTCTX",
	WSAEINTR:                     "WSAEINTR",
	WSAEBADF:                     "WSAEBADF",
	WSAEACCES:                    "WSAEACCES",
	WSAEFAULT:                    "WSAEFAULT",
	WSAEINVAL:                    "WSAEINVAL",
	WSAEMFILE:                    "WSAEMFILE",
	WSAEWOULDBLOCK:               "WSAEWOULDBLOCK",
	WSAEINPROGRESS:               "WSAEINPROGRESS",
	WSAEALREADY:                  "WSAEALREADY",
	WSAENOTSOCK:                  "WSAENOTSOCK",
	WSAEDESTADDRREQ:              "WSAEDESTADDRREQ",
	WSAEMSGSIZE:                  "WSAEMSGSIZE",
	WSAEPROTOTYPE:                "WSAEPROTOTYPE",
	WSAENOPROTOOPT:               "WSAENOPROTOOPT",
	WSAEPROTONOSUPPORT:           "WSAEPROTONOSUPPORT",
	WSAESOCKTNOSUPPORT:           "WSAESOCKTNOSUPPORT",
	WSAEOPNOTSUPP:                "WSAEOPNOTSUPP",
	WSAEPFNOSUPPORT:              "WSAEPFNOSUPPORT",
	WSAEAFNOSUPPORT:              "WSAEAFNOSUPPORT",
	WSAEADDRINUSE:                "WSAEADDRINUSE",
	WSAEADDRNOTAVAIL:             "WSAEADDRNOTAVAIL",
	WSAENETDOWN:                  "WSAENETDOWN",
	WSAENETUNREACH:               "WSAENETUNREACH",
	WSAENETRESET:                 "WSAENETRESET",
	WSAECONNABORTED:              "WSAECONNABORTED",
	WSAECONNRESET:                "WSAECONNRESET",
	WSAENOBUFS:                   "WSAENOBUFS",
	WSAEISCONN:                   "WSAEISCONN",
	WSAENOTCONN:                  "WSAENOTCONN",
	WSAESHUTDOWN:                 "WSAESHUTDOWN",
	WSAETOOMANYREFS:              "WSAETOOMANYREFS",
	WSAETIMEDOUT:                 "WSAETIMEDOUT",
	WSAECONNREFUSED:              "WSAECONNREFUSED",
	WSAELOOP:                     "WSAELOOP",
	WSAENAMETOOLONG:              "WSAENAMETOOLONG",
	WSAEHOSTDOWN:                 "WSAEHOSTDOWN",
	WSAEHOSTUNREACH:              "WSAEHOSTUNREACH",
	WSAENOTEMPTY:                 "WSAENOTEMPTY",
	WSAEPROCLIM:                  "WSAEPROCLIM",
	WSAEUSERS:                    "WSAEUSERS",
	WSAEDQUOT:                    "WSAEDQUOT",
	WSAESTALE:                    "WSAESTALE",
	WSAEREMOTE:                   "WSAEREMOTE",
	WSASYSNOTREADY:               "WSASYSNOTREADY",
	WSAVERNOTSUPPORTED:           "WSAVERNOTSUPPORTED",
	WSANOTINITIALISED:            "WSANOTINITIALISED",
	WSAEDISCON:                   "WSAEDISCON",
	WSAHOST_NOT_FOUND:            "WSAHOST_NOT_FOUND",
	WSATRY_AGAIN:                 "WSATRY_AGAIN",
	WSANO_RECOVERY:               "WSANO_RECOVERY",
	WSANO_DATA:                   "WSANO_DATA",
}
