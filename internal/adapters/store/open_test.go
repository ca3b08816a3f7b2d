package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		kind    string
		addr    string
		want    any
		wantErr bool
	}{
		{name: "disabled by default", want: nil},
		{name: "explicit none with redis address", kind: "none", addr: mr.Addr(), want: nil},
		{name: "memory", kind: "Memory", want: &MemoryResultStore{}},
		{name: "redis by address", addr: mr.Addr(), want: &RedisResultStore{}},
		{name: "explicit redis", kind: "redis", addr: mr.Addr(), want: &RedisResultStore{}},
		{name: "redis without address", kind: "redis", wantErr: true},
		{name: "unknown kind", kind: "etcd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, closeFn, err := Open(ctx, tt.kind, tt.addr, time.Minute)
			require.NotNil(t, closeFn)
			defer func() { assert.NoError(t, closeFn()) }()

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)

			if tt.want == nil {
				assert.Nil(t, s)
				return
			}
			assert.IsType(t, tt.want, s)
		})
	}
}

func TestOpenRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	s, closeFn, err := Open(context.Background(), "redis", addr, 0)
	require.Error(t, err)
	assert.Nil(t, s)
	assert.NoError(t, closeFn())
}
