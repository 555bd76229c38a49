package paramstore

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/require"
)

// fakeAPI is a simple fake implementing ssmAPI for tests.
type fakeAPI struct {
	gotInput *ssm.GetParameterInput
	getOut   *ssm.GetParameterOutput
	getErr   error
}

func (f *fakeAPI) GetParameter(_ context.Context, in *ssm.GetParameterInput, _ ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	f.gotInput = in
	return f.getOut, f.getErr
}

func strPtr(s string) *string { return &s }

func TestGetParameter_HappyPath(t *testing.T) {
	api := &fakeAPI{getOut: &ssm.GetParameterOutput{Parameter: &types.Parameter{
		Name: strPtr("/vocabstream/openai-api-key"), Value: strPtr("sk-live-key"),
	}}}
	client, err := New(api)
	require.NoError(t, err)
	v, err := client.GetParameter(context.Background(), "/vocabstream/openai-api-key")
	require.NoError(t, err)
	require.Equal(t, "sk-live-key", v)
	require.Equal(t, "/vocabstream/openai-api-key", *api.gotInput.Name)
}

func TestGetParameter_RequestsDecryption(t *testing.T) {
	api := &fakeAPI{getOut: &ssm.GetParameterOutput{Parameter: &types.Parameter{
		Name: strPtr("p"), Value: strPtr("secret"), Type: types.ParameterTypeSecureString,
	}}}
	client, err := New(api)
	require.NoError(t, err)
	_, err = client.GetParameter(context.Background(), "p")
	require.NoError(t, err)
	require.NotNil(t, api.gotInput.WithDecryption)
	require.True(t, *api.gotInput.WithDecryption, "SecureString values must be fetched decrypted")
}

func TestGetParameter_TrimsName(t *testing.T) {
	api := &fakeAPI{getOut: &ssm.GetParameterOutput{Parameter: &types.Parameter{
		Name: strPtr("p"), Value: strPtr("v"),
	}}}
	client, err := New(api)
	require.NoError(t, err)
	_, err = client.GetParameter(context.Background(), "  p ")
	require.NoError(t, err)
	require.Equal(t, "p", *api.gotInput.Name)
}

func TestGetParameter_MissingValue(t *testing.T) {
	api := &fakeAPI{getOut: &ssm.GetParameterOutput{Parameter: &types.Parameter{Name: strPtr("p"), Value: nil}}}
	client, err := New(api)
	require.NoError(t, err)
	_, err = client.GetParameter(context.Background(), "p")
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing value")
}

func TestGetParameter_ApiError(t *testing.T) {
	api := &fakeAPI{getErr: errors.New("boom")}
	client, err := New(api)
	require.NoError(t, err)
	_, err = client.GetParameter(context.Background(), "p")
	require.Error(t, err)
	require.ErrorContains(t, err, "boom")
}

func TestGetParameter_ClientNotInitialized(t *testing.T) {
	_, err := (&Client{}).GetParameter(context.Background(), "p")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not initialized")
}

func TestGetParameter_EmptyName(t *testing.T) {
	api := &fakeAPI{}
	client, err := New(api)
	require.NoError(t, err)
	_, err = client.GetParameter(context.Background(), "  ")
	require.Error(t, err)
	require.Contains(t, err.Error(), "required")
}

func TestNew_NilAPI(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "must not be nil")
}

func TestAPIKeyName(t *testing.T) {
	cases := []struct {
		prefix string
		want   string
	}{
		{"/vocabstream", "/vocabstream/openai-api-key"},
		{"/vocabstream/", "/vocabstream/openai-api-key"},
		{"  /vocabstream  ", "/vocabstream/openai-api-key"},
		{"/vocabstream/prod", "/vocabstream/prod/openai-api-key"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, APIKeyName(tc.prefix), "prefix=%q", tc.prefix)
	}
}
