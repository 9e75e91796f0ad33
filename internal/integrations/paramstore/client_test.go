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
	getOut   *ssm.GetParameterOutput
	getErr   error
	lastName string
}

func (f *fakeAPI) GetParameter(_ context.Context, in *ssm.GetParameterInput, _ ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	if in != nil && in.Name != nil {
		f.lastName = *in.Name
	}
	return f.getOut, f.getErr
}

func strPtr(s string) *string { return &s }

func TestLoadSkillID_HappyPath(t *testing.T) {
	api := &fakeAPI{getOut: &ssm.GetParameterOutput{Parameter: &types.Parameter{
		Name: strPtr("/pillpopper/skill_id"), Value: strPtr("amzn1.ask.skill.abc"),
	}}}
	client, err := New(api)
	require.NoError(t, err)

	id, err := client.LoadSkillID(context.Background(), "/pillpopper")
	require.NoError(t, err)
	require.Equal(t, "amzn1.ask.skill.abc", id)
	require.Equal(t, "/pillpopper/skill_id", api.lastName)
}

func TestLoadSkillID_TrimsTrailingSlash(t *testing.T) {
	api := &fakeAPI{getOut: &ssm.GetParameterOutput{Parameter: &types.Parameter{
		Name: strPtr("/pillpopper/skill_id"), Value: strPtr("amzn1.ask.skill.abc"),
	}}}
	client, err := New(api)
	require.NoError(t, err)

	_, err = client.LoadSkillID(context.Background(), "/pillpopper/")
	require.NoError(t, err)
	require.Equal(t, "/pillpopper/skill_id", api.lastName)
}

func TestLoadSkillID_SecureString(t *testing.T) {
	api := &fakeAPI{getOut: &ssm.GetParameterOutput{Parameter: &types.Parameter{
		Name: strPtr("/pillpopper/skill_id"), Value: strPtr("amzn1.ask.skill.abc"),
		Type: types.ParameterTypeSecureString,
	}}}
	client, err := New(api)
	require.NoError(t, err)

	id, err := client.LoadSkillID(context.Background(), "/pillpopper")
	require.NoError(t, err)
	require.Equal(t, "amzn1.ask.skill.abc", id)
}

func TestLoadSkillID_MissingValue(t *testing.T) {
	api := &fakeAPI{getOut: &ssm.GetParameterOutput{Parameter: &types.Parameter{Name: strPtr("p"), Value: nil}}}
	client, err := New(api)
	require.NoError(t, err)

	_, err = client.LoadSkillID(context.Background(), "/pillpopper")
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing value")
}

func TestLoadSkillID_ApiError(t *testing.T) {
	api := &fakeAPI{getErr: errors.New("boom")}
	client, err := New(api)
	require.NoError(t, err)

	_, err = client.LoadSkillID(context.Background(), "/pillpopper")
	require.Error(t, err)
	require.ErrorContains(t, err, "boom")
}

func TestLoadSkillID_EmptyPrefix(t *testing.T) {
	client, err := New(&fakeAPI{})
	require.NoError(t, err)

	_, err = client.LoadSkillID(context.Background(), "  ")
	require.Error(t, err)
	require.Contains(t, err.Error(), "required")
}

func TestNew_NilAPI(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "must not be nil")
}
