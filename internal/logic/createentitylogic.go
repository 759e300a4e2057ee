package logic

import (
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
	"github.com/smswithoutborders/vault-server/shared/models"
	"github.com/smswithoutborders/vault-server/shared/repository"
)

type CreateEntityLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewCreateEntityLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateEntityLogic {
	return &CreateEntityLogic{ctx: ctx, svcCtx: svcCtx, Logger: logx.WithContext(ctx)}
}

// CreateEntity is two-phase: phase 1 requests an OTP for a new phone
// number, phase 2 (carrying ownership_proof_response) completes
// registration.
func (l *CreateEntityLogic) CreateEntity(in *pb.CreateEntityRequest) (*pb.CreateEntityResponse, error) {
	if in.OwnershipProofResponse == "" {
		return l.phaseOne(in)
	}
	return l.phaseTwo(in)
}

func (l *CreateEntityLogic) phaseOne(in *pb.CreateEntityRequest) (*pb.CreateEntityResponse, error) {
	if err := ValidateFields(map[string]string{"phone_number": in.PhoneNumber}, []Field{Req("phone_number")}, nil); err != nil {
		return nil, err
	}

	phoneHash := cryptoutil.HMACHex(l.svcCtx.HashingKey, []byte(in.PhoneNumber))
	if _, err := l.svcCtx.Entities.FindByPhoneHash(l.ctx, phoneHash); err == nil {
		return nil, status.Error(codes.AlreadyExists, "an entity already exists for this phone number")
	} else if err != repository.ErrNotFound {
		l.Errorf("lookup entity by phone hash: %v", err)
		return nil, errInternal(err)
	}

	ok, message, next, err := l.svcCtx.OTP.SendOTP(l.ctx, in.PhoneNumber)
	if err != nil {
		l.Errorf("send otp: %v", err)
		return nil, errInternal(err)
	}
	if !ok {
		return nil, status.Error(codes.Internal, message)
	}

	return &pb.CreateEntityResponse{
		RequiresOwnershipProof: true,
		Message:                message,
		NextAttemptTimestamp:   next,
	}, nil
}

func (l *CreateEntityLogic) phaseTwo(in *pb.CreateEntityRequest) (*pb.CreateEntityResponse, error) {
	values := map[string]string{
		"phone_number":              in.PhoneNumber,
		"country_code":              in.CountryCode,
		"password":                  in.Password,
		"client_publish_pub_key":    in.ClientPublishPubKey,
		"client_device_id_pub_key":  in.ClientDeviceIdPubKey,
		"ownership_proof_response":  in.OwnershipProofResponse,
	}
	fields := []Field{
		Req("phone_number"), Req("country_code"), Req("password"),
		Req("client_publish_pub_key"), Req("client_device_id_pub_key"),
		Req("ownership_proof_response"),
	}
	x25519 := map[string]bool{"client_publish_pub_key": true, "client_device_id_pub_key": true}
	if err := ValidateFields(values, fields, x25519); err != nil {
		return nil, err
	}

	ok, message, err := l.svcCtx.OTP.VerifyOTP(l.ctx, in.PhoneNumber, in.OwnershipProofResponse)
	if err != nil {
		l.Errorf("verify otp: %v", err)
		return nil, errInternal(err)
	}
	if !ok {
		return nil, status.Error(codes.Unauthenticated, message)
	}

	phoneHash := cryptoutil.HMACHex(l.svcCtx.HashingKey, []byte(in.PhoneNumber))
	if _, err := l.svcCtx.Entities.FindByPhoneHash(l.ctx, phoneHash); err == nil {
		return nil, status.Error(codes.AlreadyExists, "an entity already exists for this phone number")
	} else if err != repository.ErrNotFound {
		l.Errorf("lookup entity by phone hash: %v", err)
		return nil, errInternal(err)
	}

	eid := DeriveEID(phoneHash)
	passwordHash := cryptoutil.HMACHex(l.svcCtx.HashingKey, []byte(in.Password))
	countryCT, err := cryptoutil.AESGCMEncrypt(l.svcCtx.EncryptionKey, []byte(in.CountryCode))
	if err != nil {
		l.Errorf("encrypt country code: %v", err)
		return nil, errInternal(err)
	}

	publishKP, err := l.svcCtx.Keystore.GetOrCreate(l.svcCtx.Keystore.PublishPath(eid))
	if err != nil {
		l.Errorf("keystore publish getorcreate: %v", err)
		return nil, errInternal(err)
	}
	deviceIDKP, err := l.svcCtx.Keystore.GetOrCreate(l.svcCtx.Keystore.DeviceIDPath(eid))
	if err != nil {
		l.Errorf("keystore device_id getorcreate: %v", err)
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

	entity := &models.Entity{
		EID:                   eid,
		PhoneNumberHash:       phoneHash,
		PasswordHash:          passwordHash,
		CountryCodeCiphertext: countryCT,
		ClientPublishPubKey:   in.ClientPublishPubKey,
		ClientDeviceIDPubKey:  in.ClientDeviceIdPubKey,
		PublishKeypair:        keystore.SerializeBlob(publishKP),
		DeviceIDKeypair:       keystore.SerializeBlob(deviceIDKP),
	}
	entity.DeviceID.String = devID
	entity.DeviceID.Valid = true
	repository.SetCreateTimestamps(entity)

	if err := l.svcCtx.Entities.Create(l.ctx, entity); err != nil {
		l.Errorf("persist entity: %v", err)
		return nil, errInternal(err)
	}

	return &pb.CreateEntityResponse{
		LongLivedToken:       token,
		ServerPublishPubKey:  cryptoutil.EncodePublicKey(publishKP.Public),
		ServerDeviceIdPubKey: cryptoutil.EncodePublicKey(deviceIDKP.Public),
	}, nil
}
