package logic

import (
	"context"
	"time"

	"github.com/smswithoutborders/vault-server/internal/cryptoutil"
	"github.com/smswithoutborders/vault-server/internal/keystore"
	"github.com/smswithoutborders/vault-server/internal/sessiontoken"
	"github.com/smswithoutborders/vault-server/internal/svc"
	"github.com/smswithoutborders/vault-server/shared/models"
	"github.com/smswithoutborders/vault-server/shared/repository"
)

// VerifyLLT splits the token, looks up the entity by eid, recomputes the
// device-id shared key from stored material, verifies the HMAC in
// constant time, and asserts the payload's eid matches.
func VerifyLLT(ctx context.Context, svcCtx *svc.ServiceContext, token string) (*models.Entity, error) {
	eidHex, rest, err := sessiontoken.Split(token)
	if err != nil {
		return nil, errUnauthenticated()
	}

	entity, err := svcCtx.Entities.FindByEID(ctx, eidHex)
	if err == repository.ErrNotFound {
		return nil, errUnauthenticated()
	}
	if err != nil {
		return nil, errInternal(err)
	}

	deviceIDKP, err := keystore.DeserializeBlob(entity.DeviceIDKeypair)
	if err != nil {
		return nil, errInternal(err)
	}
	clientDeviceIDPub, err := cryptoutil.DecodeX25519PublicKey(entity.ClientDeviceIDPubKey)
	if err != nil {
		return nil, errInternal(err)
	}
	sharedKey, err := cryptoutil.X25519Agree(deviceIDKP.Private, clientDeviceIDPub)
	if err != nil {
		return nil, errInternal(err)
	}

	if _, _, err := sessiontoken.Verify(sharedKey, rest, eidHex, time.Now()); err != nil {
		return nil, errUnauthenticated()
	}
	return entity, nil
}

// VerifyDeviceID resolves the entity that currently owns deviceID. Knowledge
// of device_id stands in for the shared secret it was derived from; it is a
// lighter-weight authenticator used for payload-path RPCs.
func VerifyDeviceID(ctx context.Context, svcCtx *svc.ServiceContext, deviceID string) (*models.Entity, error) {
	entity, err := svcCtx.Entities.FindByDeviceID(ctx, deviceID)
	if err == repository.ErrNotFound {
		return nil, errUnauthenticated()
	}
	if err != nil {
		return nil, errInternal(err)
	}
	return entity, nil
}
