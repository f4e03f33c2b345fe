package errno

type desc struct {
	name string
	msg  string
}

var table = map[Errno]desc{
	EPERM:        {"EPERM", "Operation not permitted"},
	ENOENT:       {"ENOENT", "No such file or directory"},
	ESRCH:        {"ESRCH", "No such process"},
	EINTR:        {"EINTR", "Interrupted function call"},
	EIO:          {"EIO", "Input/output error"},
	ENXIO:        {"ENXIO", "No such device or address"},
	E2BIG:        {"E2BIG", "Arg list too long"},
	ENOEXEC:      {"ENOEXEC", "Exec format error"},
	EBADF:        {"EBADF", "Bad file descriptor"},
	ECHILD:       {"ECHILD", "No child processes"},
	EAGAIN:       {"EAGAIN", "Resource temporarily unavailable"},
	ENOMEM:       {"ENOMEM", "Not enough space"},
	EACCES:       {"EACCES", "Permission denied"},
	EFAULT:       {"EFAULT", "Bad address"},
	EBUSY:        {"EBUSY", "Device or resource busy"},
	EEXIST:       {"EEXIST", "File exists"},
	EXDEV:        {"EXDEV", "Improper link"},
	ENODEV:       {"ENODEV", "No such device"},
	ENOTDIR:      {"ENOTDIR", "Not a directory"},
	EISDIR:       {"EISDIR", "Is a directory"},
	EINVAL:       {"EINVAL", "Invalid argument"},
	ENFILE:       {"ENFILE", "Too many open files in system"},
	EMFILE:       {"EMFILE", "Too many open files"},
	ENOTTY:       {"ENOTTY", "Inappropriate I/O control operation"},
	EFBIG:        {"EFBIG", "File too large"},
	ENOSPC:       {"ENOSPC", "No space left on device"},
	ESPIPE:       {"ESPIPE", "Invalid seek"},
	EROFS:        {"EROFS", "Read-only file system"},
	EMLINK:       {"EMLINK", "Too many links"},
	EPIPE:        {"EPIPE", "Broken pipe"},
	EDOM:         {"EDOM", "Domain error"},
	ERANGE:       {"ERANGE", "Result too large"},
	EDEADLK:      {"EDEADLK", "Resource deadlock avoided"},
	ENAMETOOLONG: {"ENAMETOOLONG", "Filename too long"},
	ENOLCK:       {"ENOLCK", "No locks available"},
	ENOSYS:       {"ENOSYS", "Function not implemented"},
	ENOTEMPTY:    {"ENOTEMPTY", "Directory not empty"},
	EILSEQ:       {"EILSEQ", "Illegal byte sequence"},

	ENOCSI:          {"ENOCSI", "No CSI structure available"},
	EL2HLT:          {"EL2HLT", "Level 2 halted"},
	EBADE:           {"EBADE", "Invalid exchange"},
	EBADR:           {"EBADR", "Invalid request descriptor"},
	EXFULL:          {"EXFULL", "Exchange full"},
	ENOANO:          {"ENOANO", "No anode"},
	EBADRQC:         {"EBADRQC", "Invalid request code"},
	EBADSLT:         {"EBADSLT", "Invalid slot"},
	EBFONT:          {"EBFONT", "Bad font file fmt"},
	ENOSTR:          {"ENOSTR", "Device not a stream"},
	ENODATA:         {"ENODATA", "No data (for no delay io)"},
	ETIME:           {"ETIME", "Timer expired"},
	ENOSR:           {"ENOSR", "Out of streams resources"},
	ENONET:          {"ENONET", "Machine is not on the network"},
	ENOPKG:          {"ENOPKG", "Package not installed"},
	EREMOTE:         {"EREMOTE", "The object is remote"},
	ENOLINK:         {"ENOLINK", "The link has been severed"},
	EADV:            {"EADV", "Advertise error"},
	ESRMNT:          {"ESRMNT", "Srmount error"},
	ECOMM:           {"ECOMM", "Communication error on send"},
	EPROTO:          {"EPROTO", "Protocol error"},
	EMULTIHOP:       {"EMULTIHOP", "Multihop attempted"},
	ELBIN:           {"ELBIN", "Inode is remote (not really error)"},
	EDOTDOT:         {"EDOTDOT", "Cross mount point (not really error)"},
	EBADMSG:         {"EBADMSG", "Trying to read unreadable message"},
	ENOTUNIQ:        {"ENOTUNIQ", "Given log. name not unique"},
	EBADFD:          {"EBADFD", "f.d. invalid for this operation"},
	EREMCHG:         {"EREMCHG", "Remote address changed"},
	ELIBACC:         {"ELIBACC", "Can't access a needed shared lib"},
	ELIBBAD:         {"ELIBBAD", "Accessing a corrupted shared lib"},
	ELIBSCN:         {"ELIBSCN", ".lib section in a.out corrupted"},
	ELIBMAX:         {"ELIBMAX", "Attempting to link in too many libs"},
	ELIBEXEC:        {"ELIBEXEC", "Attempting to exec a shared library"},
	ENMFILE:         {"ENMFILE", "No more files"},
	ELOOP:           {"ELOOP", "Too many symbolic links"},
	EOPNOTSUPP:      {"EOPNOTSUPP", "Operation not supported on transport endpoint"},
	EPFNOSUPPORT:    {"EPFNOSUPPORT", "Protocol family not supported"},
	ECONNRESET:      {"ECONNRESET", "Connection reset by peer"},
	ENOBUFS:         {"ENOBUFS", "No buffer space available"},
	EAFNOSUPPORT:    {"EAFNOSUPPORT", "Address family not supported by protocol family"},
	EPROTOTYPE:      {"EPROTOTYPE", "Protocol wrong type for socket"},
	ENOTSOCK:        {"ENOTSOCK", "Socket operation on non-socket"},
	ENOPROTOOPT:     {"ENOPROTOOPT", "Protocol not available"},
	ESHUTDOWN:       {"ESHUTDOWN", "Can't send after socket shutdown"},
	ECONNREFUSED:    {"ECONNREFUSED", "Connection refused"},
	EADDRINUSE:      {"EADDRINUSE", "Address already in use"},
	ECONNABORTED:    {"ECONNABORTED", "Connection aborted"},
	ENETUNREACH:     {"ENETUNREACH", "Network is unreachable"},
	ENETDOWN:        {"ENETDOWN", "Network interface is not configured"},
	ETIMEDOUT:       {"ETIMEDOUT", "Connection timed out"},
	EHOSTDOWN:       {"EHOSTDOWN", "Host is down"},
	EHOSTUNREACH:    {"EHOSTUNREACH", "Host is unreachable"},
	EINPROGRESS:     {"EINPROGRESS", "Connection already in progress"},
	EALREADY:        {"EALREADY", "Socket already connected"},
	EDESTADDRREQ:    {"EDESTADDRREQ", "Destination address required"},
	EMSGSIZE:        {"EMSGSIZE", "Message too long"},
	EPROTONOSUPPORT: {"EPROTONOSUPPORT", "Unknown protocol"},
	ESOCKTNOSUPPORT: {"ESOCKTNOSUPPORT", "Socket type not supported"},
	EADDRNOTAVAIL:   {"EADDRNOTAVAIL", "Address not available"},
	ENETRESET:       {"ENETRESET", "Connection aborted by network"},
	EISCONN:         {"EISCONN", "Socket is already connected"},
	ENOTCONN:        {"ENOTCONN", "Socket is not connected"},
	ETOOMANYREFS:    {"ETOOMANYREFS", "Too many references: cannot splice"},
	EPROCLIM:        {"EPROCLIM", "Too many processes"},
	EUSERS:          {"EUSERS", "Too many users"},
	EDQUOT:          {"EDQUOT", "Disk quota exceeded"},
	ESTALE:          {"ESTALE", "Unknown error"},
	ENOTSUP:         {"ENOTSUP", "Not supported"},
	ENOMEDIUM:       {"ENOMEDIUM", "No medium (in tape drive)"},
	ENOSHARE:        {"ENOSHARE", "No such host or network path"},
	ECASECLASH:      {"ECASECLASH", "Filename exists with different case"},
	EOVERFLOW:       {"EOVERFLOW", "Value too large for defined data type"},
}

var byName = func() map[string]Errno {
	m := make(map[string]Errno, len(table)+2)
	for e, d := range table {
		m[d.name] = e
	}
	m["EDEADLOCK"] = EDEADLOCK
	m["EWOULDBLOCK"] = EWOULDBLOCK
	return m
}()
