package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/smswithoutborders/vault-server/internal/ratchet"
	"github.com/smswithoutborders/vault-server/internal/svc"
	pb "github.com/smswithoutborders/vault-server/pb/vault"
)

type EncryptPayloadLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewEncryptPayloadLogic(ctx context.Context, svcCtx *svc.ServiceContext) *EncryptPayloadLogic {
	return &EncryptPayloadLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

// EncryptPayload is the symmetric counterpart to DecryptPayload: it
// advances the sending chain and returns a base64-framed ciphertext.
func (l *EncryptPayloadLogic) EncryptPayload(in *pb.EncryptPayloadRequest) (*pb.EncryptPayloadResponse, error) {
	if err := ValidateFields(map[string]string{"device_id": in.DeviceId}, []Field{Req("device_id")}, nil); err != nil {
		return nil, err
	}
	if len(in.PayloadPlaintext) == 0 {
		return nil, status.Error(codes.InvalidArgument, "invalid request: missing fields [payload_plaintext]")
	}

	entity, err := VerifyDeviceID(l.ctx, l.svcCtx, in.DeviceId)
	if err != nil {
		return nil, err
	}

	unlock := l.svcCtx.Locks.Lock(entity.EID)
	defer unlock()

	state, err := loadOrInitRatchetState(l.Logger, entity)
	if err != nil {
		return nil, err
	}

	header, ct, newState, err := ratchet.Encrypt(state, in.PayloadPlaintext)
	if err != nil {
		l.Errorf("ratchet encrypt: %v", err)
		return nil, status.Error(codes.FailedPrecondition, "no sending chain established for this entity yet")
	}

	entity.ServerState = ratchet.SerializeState(newState)
	if err := l.svcCtx.Entities.Save(l.ctx, entity); err != nil {
		l.Errorf("persist ratchet state: %v", err)
		return nil, errInternal(err)
	}

	frame := ratchet.EncodeFrame(header, ct)
	return &pb.EncryptPayloadResponse{Success: true, PayloadCiphertext: frame}, nil
}
