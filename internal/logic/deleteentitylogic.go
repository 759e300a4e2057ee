package logic

import (
	"context"
	"fmt"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/smswithoutborders/vault-server/internal/cryptoutil"
	"github.com/smswithoutborders/vault-server/internal/svc"
	pb "github.com/smswithoutborders/vault-server/pb/vault"
)

type DeleteEntityLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewDeleteEntityLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteEntityLogic {
	return &DeleteEntityLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

// DeleteEntity refuses to proceed while the entity owns any tokens, and
// once that precondition passes it also removes the entity's keystore
// files.
func (l *DeleteEntityLogic) DeleteEntity(in *pb.DeleteEntityRequest) (*pb.DeleteEntityResponse, error) {
	if err := ValidateFields(map[string]string{"long_lived_token": in.LongLivedToken},
		[]Field{Req("long_lived_token")}, nil); err != nil {
		return nil, err
	}

	entity, err := VerifyLLT(l.ctx, l.svcCtx, in.LongLivedToken)
	if err != nil {
		return nil, err
	}

	rows, err := l.svcCtx.Tokens.ListByEID(l.ctx, entity.EID)
	if err != nil {
		l.Errorf("list tokens: %v", err)
		return nil, errInternal(err)
	}
	if len(rows) > 0 {
		refs := make([]string, 0, len(rows))
		for _, t := range rows {
			identifier, err := cryptoutil.AESGCMDecrypt(l.svcCtx.EncryptionKey, t.AccountIdentifier)
			if err != nil {
				l.Errorf("decrypt account identifier: %v", err)
				return nil, errInternal(err)
			}
			refs = append(refs, fmt.Sprintf("(%s, %s)", t.Platform, identifier))
		}
		return nil, status.Errorf(codes.FailedPrecondition,
			"entity still owns %d token(s); revoke them first: %s", len(rows), strings.Join(refs, ", "))
	}

	unlock := l.svcCtx.Locks.Lock(entity.EID)
	defer unlock()

	if err := l.svcCtx.Entities.Delete(l.ctx, entity.EID); err != nil {
		l.Errorf("delete entity: %v", err)
		return nil, errInternal(err)
	}

	if err := l.svcCtx.Keystore.Remove(l.svcCtx.Keystore.PublishPath(entity.EID)); err != nil {
		l.Errorf("remove publish keystore file: %v", err)
	}
	if err := l.svcCtx.Keystore.Remove(l.svcCtx.Keystore.DeviceIDPath(entity.EID)); err != nil {
		l.Errorf("remove device_id keystore file: %v", err)
	}
	l.svcCtx.Locks.Delete(entity.EID)

	return &pb.DeleteEntityResponse{Success: true, Message: "entity deleted"}, nil
}
