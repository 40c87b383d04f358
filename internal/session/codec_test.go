package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyenedu/truyen-fe/internal/model"
)

func Test_DecodeUser(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	user, err := decodeUser(`{"id":1,"username":"an","role":"USER"}`)
	require.Nil(err)
	require.NotNil(user)

	assert.Equal(int64(1), user.ID)
	assert.Equal("an", user.Username)
	assert.Equal(model.RoleUser, user.Role)
}

func Test_DecodeUserSentinels(t *testing.T) {
	require := require.New(t)

	for _, raw := range []string{"", "undefined", "null"} {
		user, err := decodeUser(raw)
		require.Nil(err, raw)
		require.Nil(user, raw)
	}
}

func Test_DecodeUserMalformed(t *testing.T) {
	require := require.New(t)

	user, err := decodeUser(`{"id":1,`)
	require.NotNil(err)
	require.Nil(user)
}

func Test_EncodeDecodeRoundTrip(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	in := &model.User{ID: 9, Username: "binh", Role: model.RoleAdmin, Email: "b@x.vn"}
	raw, err := encodeUser(in)
	require.Nil(err)

	out, err := decodeUser(raw)
	require.Nil(err)
	assert.Equal(in, out)
}
