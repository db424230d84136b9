package service

import "errors"

var (
	ErrInvalidField     = errors.New("invalid field name")
	ErrInvalidMatchType = errors.New("invalid match type")
	ErrEmptyRuleText    = errors.New("empty rule text")

	ErrTransactionBusy = errors.New("store transaction already active")

	ErrNoWorkspace = errors.New("workspace persistence is disabled")
)
