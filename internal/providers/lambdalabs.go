package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sysrai/sysrai-platform/internal/logger"
)

// LambdaLabsProvider talks to the Lambda Labs cloud API. Lambda is the most
// expensive vendor and last in the preference order.
type LambdaLabsProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewLambdaLabsProvider creates a Lambda Labs adapter.
func NewLambdaLabsProvider(baseURL, apiKey string) *LambdaLabsProvider {
	return &LambdaLabsProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Name implements Provider.
func (p *LambdaLabsProvider) Name() string { return "lambda" }

type lambdaLaunchRequest struct {
	Quantity         int    `json:"quantity"`
	InstanceTypeName string `json:"instance_type_name"`
}

type lambdaInstance struct {
	ID           string  `json:"id"`
	InstanceType string  `json:"instance_type_name"`
	PriceCentsHr float64 `json:"price_cents_per_hour"`
	Region       string  `json:"region_name"`
}

type lambdaLaunchResponse struct {
	Data struct {
		Instances []lambdaInstance `json:"instances"`
	} `json:"data"`
}

// Launch implements Provider.
func (p *LambdaLabsProvider) Launch(ctx context.Context, count int, gpuClass string) ([]Instance, error) {
	body, err := json.Marshal(lambdaLaunchRequest{Quantity: count, InstanceTypeName: gpuClass})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/instance-operations/launch", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("lambda launch returned %d: %s", resp.StatusCode, raw)
	}

	var launched lambdaLaunchResponse
	if err := json.NewDecoder(resp.Body).Decode(&launched); err != nil {
		return nil, err
	}

	instances := make([]Instance, 0, len(launched.Data.Instances))
	for _, inst := range launched.Data.Instances {
		instances = append(instances, Instance{
			InstanceID: inst.ID,
			GPUClass:   inst.InstanceType,
			HourlyCost: inst.PriceCentsHr / 100,
			Region:     inst.Region,
		})
	}

	logger.Log.Infow("lambda launch", "requested", count, "launched", len(instances), "gpu_class", gpuClass)
	return instances, nil
}

// Terminate implements Provider.
func (p *LambdaLabsProvider) Terminate(ctx context.Context, instanceID string) error {
	body, err := json.Marshal(map[string][]string{"instance_ids": {instanceID}})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/instance-operations/terminate", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("lambda terminate returned %d: %s", resp.StatusCode, raw)
	}
	return nil
}
