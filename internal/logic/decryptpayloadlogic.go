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

type DecryptPayloadLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewDecryptPayloadLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DecryptPayloadLogic {
	return &DecryptPayloadLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

// DecryptPayload is device_id-authenticated and runs the ratchet decrypt
// algorithm. All entity mutations are serialized per-eid.
func (l *DecryptPayloadLogic) DecryptPayload(in *pb.DecryptPayloadRequest) (*pb.DecryptPayloadResponse, error) {
	if err := ValidateFields(map[string]string{
		"device_id":          in.DeviceId,
		"payload_ciphertext": in.PayloadCiphertext,
	}, []Field{Req("device_id"), Req("payload_ciphertext")}, nil); err != nil {
		return nil, err
	}

	entity, err := VerifyDeviceID(l.ctx, l.svcCtx, in.DeviceId)
	if err != nil {
		return nil, err
	}

	header, ct, err := ratchet.DecodeFrame(in.PayloadCiphertext)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "malformed payload framing")
	}

	unlock := l.svcCtx.Locks.Lock(entity.EID)
	defer unlock()

	state, err := loadOrInitRatchetState(l.Logger, entity)
	if err != nil {
		return nil, err
	}

	plaintext, newState, err := ratchet.Decrypt(state, header, ct)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "payload decryption failed")
	}

	entity.ServerState = ratchet.SerializeState(newState)
	if err := l.svcCtx.Entities.Save(l.ctx, entity); err != nil {
		l.Errorf("persist ratchet state: %v", err)
		return nil, errInternal(err)
	}

	return &pb.DecryptPayloadResponse{Success: true, PayloadPlaintext: plaintext}, nil
}

