package logic

import (
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/smswithoutborders/vault-server/internal/cryptoutil"
	"github.com/smswithoutborders/vault-server/internal/keystore"
	"github.com/smswithoutborders/vault-server/internal/ratchet"
	"github.com/smswithoutborders/vault-server/shared/models"
)

// loadOrInitRatchetState returns entity's persisted ratchet state, or seeds
// a fresh receiving state from the publish shared key on first use. Shared
// by DecryptPayload and EncryptPayload so both sides of the channel
// bootstrap identically.
func loadOrInitRatchetState(log logx.Logger, entity *models.Entity) (*ratchet.State, error) {
	if len(entity.ServerState) > 0 {
		state, err := ratchet.DeserializeState(entity.ServerState)
		if err != nil {
			log.Errorf("deserialize ratchet state: %v", err)
			return nil, errInternal(err)
		}
		return state, nil
	}

	publishKP, err := keystore.DeserializeBlob(entity.PublishKeypair)
	if err != nil {
		log.Errorf("deserialize publish keypair: %v", err)
		return nil, errInternal(err)
	}
	clientPublishPub, err := cryptoutil.DecodeX25519PublicKey(entity.ClientPublishPubKey)
	if err != nil {
		log.Errorf("decode client publish pub key: %v", err)
		return nil, errInternal(err)
	}
	sharedKey, err := cryptoutil.X25519Agree(publishKP.Private, clientPublishPub)
	if err != nil {
		log.Errorf("publish agreement: %v", err)
		return nil, errInternal(err)
	}
	return ratchet.NewReceivingState(sharedKey, publishKP), nil
}
