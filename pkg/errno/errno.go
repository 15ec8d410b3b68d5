package errno

import (
	"errors"
	"fmt"
)

const (
	SuccessCode    = 0
	ServiceErrCode = 10001
	ParamErrCode   = 10002

	RequestErrCode   = 40001
	NotFoundErrCode  = 40401
	ForbiddenErrCode = 40301
	ConflictErrCode  = 40901

	MysqlErrCode = 50001
	RedisErrCode = 50002
	MqErrCode    = 50003
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success    = NewErrNo(SuccessCode, "Success")
	ServiceErr = NewErrNo(ServiceErrCode, "Service is unable to start successfully")
	ErrBind    = NewErrNo(ParamErrCode, "Error occurred while binding the request body to the struct")

	RequestErr   = NewErrNo(RequestErrCode, "Missing or invalid request field")
	NotFoundErr  = NewErrNo(NotFoundErrCode, "Requested resource does not exist")
	ForbiddenErr = NewErrNo(ForbiddenErrCode, "You are not allowed to perform this operation")
	ConflictErr  = NewErrNo(ConflictErrCode, "Unexpected resource state")

	MysqlErr = NewErrNo(MysqlErrCode, "Mysql operation failed")
	RedisErr = NewErrNo(RedisErrCode, "Redis operation failed")
	MqErr    = NewErrNo(MqErrCode, "Message queue operation failed")
)

// ConvertErr converts any error to ErrNo. Unknown errors keep their
// message under the generic service code.
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	errno := ErrNo{}
	if errors.As(err, &errno) {
		return errno
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
