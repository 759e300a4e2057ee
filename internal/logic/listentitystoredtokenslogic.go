package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/smswithoutborders/vault-server/internal/cryptoutil"
	"github.com/smswithoutborders/vault-server/internal/svc"
	pb "github.com/smswithoutborders/vault-server/pb/vault"
)

type ListEntityStoredTokensLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewListEntityStoredTokensLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListEntityStoredTokensLogic {
	return &ListEntityStoredTokensLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

func (l *ListEntityStoredTokensLogic) ListEntityStoredTokens(in *pb.ListEntityStoredTokensRequest) (*pb.ListEntityStoredTokensResponse, error) {
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

	out := make([]*pb.StoredToken, 0, len(rows))
	for _, t := range rows {
		identifier, err := cryptoutil.AESGCMDecrypt(l.svcCtx.EncryptionKey, t.AccountIdentifier)
		if err != nil {
			l.Errorf("decrypt account identifier: %v", err)
			return nil, errInternal(err)
		}
		out = append(out, &pb.StoredToken{Platform: t.Platform, AccountIdentifier: string(identifier)})
	}

	return &pb.ListEntityStoredTokensResponse{StoredTokens: out}, nil
}
