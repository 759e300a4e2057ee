package logic

import (
	"database/sql"
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/smswithoutborders/vault-server/internal/cryptoutil"
	"github.com/smswithoutborders/vault-server/internal/deviceid"
	"github.com/smswithoutborders/vault-server/internal/keystore"
	"github.com/smswithoutborders/vault-server/internal/sessiontoken"
	"github.com/smswithoutborders/vault-server/internal/svc"
	pb "github.com/smswithoutborders/vault-server/pb/vault"
	"github.com/smswithoutborders/vault-server/shared/repository"
)

type AuthenticateEntityLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewAuthenticateEntityLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AuthenticateEntityLogic {
	return &AuthenticateEntityLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

// AuthenticateEntity re-binds an existing entity to a new device.
func (l *AuthenticateEntityLogic) AuthenticateEntity(in *pb.AuthenticateEntityRequest) (*pb.AuthenticateEntityResponse, error) {
	if in.OwnershipProofResponse == "" {
		return l.phaseOne(in)
	}
	return l.phaseTwo(in)
}

func (l *AuthenticateEntityLogic) phaseOne(in *pb.AuthenticateEntityRequest) (*pb.AuthenticateEntityResponse, error) {
	if err := ValidateFields(map[string]string{
		"phone_number": in.PhoneNumber,
		"password":     in.Password,
	}, []Field{Req("phone_number"), Req("password")}, nil); err != nil {
		return nil, err
	}

	phoneHash := cryptoutil.HMACHex(l.svcCtx.HashingKey, []byte(in.PhoneNumber))
	entity, err := l.svcCtx.Entities.FindByPhoneHash(l.ctx, phoneHash)
	if err == repository.ErrNotFound {
		return nil, errUnauthenticated()
	}
	if err != nil {
		l.Errorf("lookup entity: %v", err)
		return nil, errInternal(err)
	}

	if !cryptoutil.VerifyHMAC(l.svcCtx.HashingKey, []byte(in.Password), entity.PasswordHash) {
		return nil, errUnauthenticated()
	}

	ok, message, next, err := l.svcCtx.OTP.SendOTP(l.ctx, in.PhoneNumber)
	if err != nil {
		l.Errorf("send otp: %v", err)
		return nil, errInternal(err)
	}
	if !ok {
		return nil, status.Error(codes.Internal, message)
	}

	// Clear device_id and server_state once the OTP has been sent, before
	// returning: a request that never completes phase 2 must not leave a
	// stale device bound to the entity.
	entity.DeviceID = sql.NullString{}
	entity.ServerState = nil
	if err := l.svcCtx.Entities.Save(l.ctx, entity); err != nil {
		l.Errorf("clear device binding: %v", err)
		return nil, errInternal(err)
	}

	return &pb.AuthenticateEntityResponse{
		RequiresOwnershipProof: true,
		Message:                message,
		NextAttemptTimestamp:   next,
	}, nil
}

func (l *AuthenticateEntityLogic) phaseTwo(in *pb.AuthenticateEntityRequest) (*pb.AuthenticateEntityResponse, error) {
	values := map[string]string{
		"phone_number":             in.PhoneNumber,
		"password":                 in.Password,
		"client_publish_pub_key":   in.ClientPublishPubKey,
		"client_device_id_pub_key": in.ClientDeviceIdPubKey,
		"ownership_proof_response": in.OwnershipProofResponse,
	}
	fields := []Field{
		Req("phone_number"), Req("password"),
		Req("client_publish_pub_key"), Req("client_device_id_pub_key"),
		Req("ownership_proof_response"),
	}
	x25519 := map[string]bool{"client_publish_pub_key": true, "client_device_id_pub_key": true}
	if err := ValidateFields(values, fields, x25519); err != nil {
		return nil, err
	}

	phoneHash := cryptoutil.HMACHex(l.svcCtx.HashingKey, []byte(in.PhoneNumber))
	entity, err := l.svcCtx.Entities.FindByPhoneHash(l.ctx, phoneHash)
	if err == repository.ErrNotFound {
		return nil, errUnauthenticated()
	}
	if err != nil {
		l.Errorf("lookup entity: %v", err)
		return nil, errInternal(err)
	}

	if !cryptoutil.VerifyHMAC(l.svcCtx.HashingKey, []byte(in.Password), entity.PasswordHash) {
		return nil, errUnauthenticated()
	}

	ok, message, err := l.svcCtx.OTP.VerifyOTP(l.ctx, in.PhoneNumber, in.OwnershipProofResponse)
	if err != nil {
		l.Errorf("verify otp: %v", err)
		return nil, errInternal(err)
	}
	if !ok {
		return nil, status.Error(codes.Unauthenticated, message)
	}

	eid := entity.EID
	unlock := l.svcCtx.Locks.Lock(eid)
	defer unlock()

	publishKP, err := l.svcCtx.Keystore.Rotate(l.svcCtx.Keystore.PublishPath(eid))
	if err != nil {
		l.Errorf("rotate publish keypair: %v", err)
		return nil, errInternal(err)
	}
	deviceIDKP, err := l.svcCtx.Keystore.Rotate(l.svcCtx.Keystore.DeviceIDPath(eid))
	if err != nil {
		l.Errorf("rotate device_id keypair: %v", err)
		return nil, errInternal(err)
	}

	clientDeviceIDPub, err := cryptoutil.DecodeX25519PublicKey(in.ClientDeviceIdPubKey)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid client_device_id_pub_key")
	}
	sharedKey, err := cryptoutil.X25519Agree(deviceIDKP.Private, clientDeviceIDPub)
	if err != nil {
		l.Errorf("device id agreement: %v", err)
		return nil, errInternal(err)
	}
	devID := deviceid.Compute(sharedKey, in.PhoneNumber, in.ClientDeviceIdPubKey)

	now := time.Now()
	token, err := sessiontoken.Mint(sharedKey, eid, now, now.Add(l.svcCtx.Config.SessionTokenLifetime()))
	if err != nil {
		l.Errorf("mint llt: %v", err)
		return nil, errInternal(err)
	}

	entity.ClientPublishPubKey = in.ClientPublishPubKey
	entity.ClientDeviceIDPubKey = in.ClientDeviceIdPubKey
	entity.PublishKeypair = keystore.SerializeBlob(publishKP)
	entity.DeviceIDKeypair = keystore.SerializeBlob(deviceIDKP)
	entity.DeviceID = sql.NullString{String: devID, Valid: true}
	entity.ServerState = nil

	if err := l.svcCtx.Entities.Save(l.ctx, entity); err != nil {
		l.Errorf("persist rotated entity: %v", err)
		return nil, errInternal(err)
	}

	return &pb.AuthenticateEntityResponse{
		LongLivedToken:       token,
		ServerPublishPubKey:  cryptoutil.EncodePublicKey(publishKP.Public),
		ServerDeviceIdPubKey: cryptoutil.EncodePublicKey(deviceIDKP.Public),
	}, nil
}
