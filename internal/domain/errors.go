package domain

import "errors"

var (
	// ErrOpenTimeOutOfRange возвращается, когда время открытия вне диапазона [0, 1439]
	ErrOpenTimeOutOfRange = errors.New("domain: open time out of range")

	// ErrCloseTimeOutOfRange возвращается, когда время закрытия вне диапазона [0, 1439]
	ErrCloseTimeOutOfRange = errors.New("domain: close time out of range")

	// ErrCloseBeforeOpen возвращается, когда время закрытия не позже времени открытия
	ErrCloseBeforeOpen = errors.New("domain: close time must be after open time")
)
