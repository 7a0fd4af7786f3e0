package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/tokenregister/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	invalidArgument = []error{
		common.ErrAddressMismatch,
		common.ErrInvalidInstruction,
		common.ErrNotEnoughAccounts,
		common.ErrInvalidAccountData,
		common.ErrInvalidMint,
		common.ErrInvalidProgramAccount,
		common.ErrMetadataTooLarge,
		common.ErrInvalidTransaction,
		common.ErrUnknownProgram,
		common.ErrAccountAlreadyInUse,
	}
	alreadyExists = []error{
		common.ErrAlreadyInitialized,
		common.ErrAlreadyRegistered,
		common.ErrDuplicateTransaction,
	}
	permissionDenied = []error{
		common.ErrorUnauthorized,
		common.ErrMissingSignature,
		common.ErrSignatureVerification,
	}
)

// toStatus maps a service error to a gRPC status whose message is the text
// of the matched sentinel, so clients can recover it with
// common.ErrorFromMessage.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	for _, e := range invalidArgument {
		if errors.Is(err, e) {
			return status.Error(codes.InvalidArgument, e.Error())
		}
	}
	for _, e := range alreadyExists {
		if errors.Is(err, e) {
			return status.Error(codes.AlreadyExists, e.Error())
		}
	}
	if errors.Is(err, common.ErrorNotFound) {
		return status.Error(codes.NotFound, common.ErrorNotFound.Error())
	}
	for _, e := range permissionDenied {
		if errors.Is(err, e) {
			return status.Error(codes.PermissionDenied, e.Error())
		}
	}
	if errors.Is(err, common.ErrSnapshotStoreNotDefined) {
		return status.Error(codes.FailedPrecondition, common.ErrSnapshotStoreNotDefined.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}
