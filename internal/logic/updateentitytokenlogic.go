package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/smswithoutborders/vault-server/internal/cryptoutil"
	"github.com/smswithoutborders/vault-server/internal/svc"
	pb "github.com/smswithoutborders/vault-server/pb/vault"
	"github.com/smswithoutborders/vault-server/shared/repository"
)

type UpdateEntityTokenLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewUpdateEntityTokenLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UpdateEntityTokenLogic {
	return &UpdateEntityTokenLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

// UpdateEntityToken is device_id-authenticated.
func (l *UpdateEntityTokenLogic) UpdateEntityToken(in *pb.UpdateEntityTokenRequest) (*pb.UpdateEntityTokenResponse, error) {
	values := map[string]string{
		"device_id":          in.DeviceId,
		"platform":           in.Platform,
		"account_identifier": in.AccountIdentifier,
		"token":              in.Token,
	}
	fields := []Field{Req("device_id"), Req("platform"), Req("account_identifier"), Req("token")}
	if err := ValidateFields(values, fields, nil); err != nil {
		return nil, err
	}

	entity, err := VerifyDeviceID(l.ctx, l.svcCtx, in.DeviceId)
	if err != nil {
		return nil, err
	}

	identifierHash := cryptoutil.HMACHex(l.svcCtx.HashingKey, []byte(in.AccountIdentifier))
	row, err := l.svcCtx.Tokens.Find(l.ctx, entity.EID, in.Platform, identifierHash)
	if err == repository.ErrNotFound {
		return nil, status.Error(codes.NotFound, "no stored token for this platform and account")
	}
	if err != nil {
		l.Errorf("lookup token: %v", err)
		return nil, errInternal(err)
	}

	tokenCT, err := cryptoutil.AESGCMEncrypt(l.svcCtx.EncryptionKey, []byte(in.Token))
	if err != nil {
		l.Errorf("encrypt account tokens: %v", err)
		return nil, errInternal(err)
	}
	row.AccountTokens = tokenCT

	if err := l.svcCtx.Tokens.Save(l.ctx, row); err != nil {
		l.Errorf("persist token update: %v", err)
		return nil, errInternal(err)
	}

	return &pb.UpdateEntityTokenResponse{Success: true, Message: "token updated"}, nil
}
