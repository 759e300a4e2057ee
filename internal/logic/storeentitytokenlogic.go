package logic

import (
	"context"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/smswithoutborders/vault-server/internal/cryptoutil"
	"github.com/smswithoutborders/vault-server/internal/svc"
	pb "github.com/smswithoutborders/vault-server/pb/vault"
	"github.com/smswithoutborders/vault-server/shared/models"
	"github.com/smswithoutborders/vault-server/shared/repository"
)

type StoreEntityTokenLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewStoreEntityTokenLogic(ctx context.Context, svcCtx *svc.ServiceContext) *StoreEntityTokenLogic {
	return &StoreEntityTokenLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

func (l *StoreEntityTokenLogic) StoreEntityToken(in *pb.StoreEntityTokenRequest) (*pb.StoreEntityTokenResponse, error) {
	values := map[string]string{
		"long_lived_token":    in.LongLivedToken,
		"token":               in.Token,
		"platform":            in.Platform,
		"account_identifier":  in.AccountIdentifier,
	}
	fields := []Field{Req("long_lived_token"), Req("token"), Req("platform"), Req("account_identifier")}
	if err := ValidateFields(values, fields, nil); err != nil {
		return nil, err
	}

	if !svc.IsSupportedPlatform(in.Platform) {
		return nil, status.Errorf(codes.Unimplemented, "platform %q is not supported", in.Platform)
	}

	entity, err := VerifyLLT(l.ctx, l.svcCtx, in.LongLivedToken)
	if err != nil {
		return nil, err
	}

	identifierHash := cryptoutil.HMACHex(l.svcCtx.HashingKey, []byte(in.AccountIdentifier))
	if _, err := l.svcCtx.Tokens.Find(l.ctx, entity.EID, in.Platform, identifierHash); err == nil {
		return nil, status.Error(codes.AlreadyExists, "a token for this platform and account already exists")
	} else if err != repository.ErrNotFound {
		l.Errorf("lookup existing token: %v", err)
		return nil, errInternal(err)
	}

	identifierCT, err := cryptoutil.AESGCMEncrypt(l.svcCtx.EncryptionKey, []byte(in.AccountIdentifier))
	if err != nil {
		l.Errorf("encrypt account identifier: %v", err)
		return nil, errInternal(err)
	}
	tokenCT, err := cryptoutil.AESGCMEncrypt(l.svcCtx.EncryptionKey, []byte(in.Token))
	if err != nil {
		l.Errorf("encrypt account tokens: %v", err)
		return nil, errInternal(err)
	}

	row := &models.EntityToken{
		ID:                    uuid.New(),
		EID:                   entity.EID,
		Platform:              in.Platform,
		AccountIdentifierHash: identifierHash,
		AccountIdentifier:     identifierCT,
		AccountTokens:         tokenCT,
	}
	repository.SetCreateTimestamps(row)

	if err := l.svcCtx.Tokens.Create(l.ctx, row); err != nil {
		l.Errorf("persist token: %v", err)
		return nil, errInternal(err)
	}

	return &pb.StoreEntityTokenResponse{Success: true, Message: "token stored"}, nil
}
