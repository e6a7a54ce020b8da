package bedrock_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"coffeeshop/internal/adapters/out/bedrock"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockModelInvoker struct{ mock.Mock }

func (m *MockModelInvoker) InvokeModel(
	ctx context.Context,
	params *bedrockruntime.InvokeModelInput,
	_ ...func(*bedrockruntime.Options),
) (*bedrockruntime.InvokeModelOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrockruntime.InvokeModelOutput)
	return out, args.Error(1)
}

func TestNewTextGenerator(t *testing.T) {
	_, err := bedrock.NewTextGenerator(nil, "", nil)
	require.Error(t, err)

	g, err := bedrock.NewTextGenerator(new(MockModelInvoker), "  ", nil)
	require.NoError(t, err)
	assert.Equal(t, bedrock.DefaultModelID, g.Model())
}

func TestTextGenerator_Generate(t *testing.T) {
	ctx := t.Context()

	t.Run("sends the messages body and reads the first block", func(t *testing.T) {
		invoker := new(MockModelInvoker)
		var sent map[string]any
		invoker.On("InvokeModel", ctx, mock.MatchedBy(func(in *bedrockruntime.InvokeModelInput) bool {
			return aws.ToString(in.ModelId) == "my-model" &&
				aws.ToString(in.ContentType) == "application/json" &&
				aws.ToString(in.Accept) == "application/json" &&
				json.Unmarshal(in.Body, &sent) == nil
		})).Return(&bedrockruntime.InvokeModelOutput{
			Body: []byte(`{"content":[{"type":"text","text":"A large latte is $4.50."},{"type":"text","text":"ignored"}]}`),
		}, nil).Once()
		g, err := bedrock.NewTextGenerator(invoker, "my-model", nil)
		require.NoError(t, err)

		answer, err := g.Generate(ctx, "be brief", "CONTEXT:\n...")

		require.NoError(t, err)
		assert.Equal(t, "A large latte is $4.50.", answer)
		assert.Equal(t, "bedrock-2023-05-31", sent["anthropic_version"])
		assert.EqualValues(t, 300, sent["max_tokens"])
		assert.EqualValues(t, 0.1, sent["temperature"])
		assert.Equal(t, "be brief", sent["system"])
		assert.Equal(t, []any{map[string]any{
			"role":    "user",
			"content": []any{map[string]any{"type": "text", "text": "CONTEXT:\n..."}},
		}}, sent["messages"])
		invoker.AssertExpectations(t)
	})

	t.Run("empty content", func(t *testing.T) {
		invoker := new(MockModelInvoker)
		invoker.On("InvokeModel", ctx, mock.Anything).
			Return(&bedrockruntime.InvokeModelOutput{Body: []byte(`{"content":[]}`)}, nil).Once()
		g, _ := bedrock.NewTextGenerator(invoker, "", nil)

		_, err := g.Generate(ctx, "s", "p")

		assert.ErrorIs(t, err, bedrock.ErrEmptyResponse)
	})

	t.Run("invoke failure", func(t *testing.T) {
		boom := errors.New("throttled")
		invoker := new(MockModelInvoker)
		invoker.On("InvokeModel", ctx, mock.Anything).Return(nil, boom).Once()
		g, _ := bedrock.NewTextGenerator(invoker, "", nil)

		_, err := g.Generate(ctx, "s", "p")

		assert.ErrorIs(t, err, boom)
	})

	t.Run("malformed body", func(t *testing.T) {
		invoker := new(MockModelInvoker)
		invoker.On("InvokeModel", ctx, mock.Anything).
			Return(&bedrockruntime.InvokeModelOutput{Body: []byte(`not json`)}, nil).Once()
		g, _ := bedrock.NewTextGenerator(invoker, "", nil)

		_, err := g.Generate(ctx, "s", "p")

		assert.Error(t, err)
	})
}
