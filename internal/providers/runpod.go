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

// RunPodProvider talks to the RunPod pods API.
type RunPodProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewRunPodProvider creates a RunPod adapter.
func NewRunPodProvider(baseURL, apiKey string) *RunPodProvider {
	return &RunPodProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Name implements Provider.
func (p *RunPodProvider) Name() string { return "runpod" }

type runpodLaunchRequest struct {
	Count   int    `json:"count"`
	GPUType string `json:"gpu_type"`
}

type runpodPod struct {
	ID         string  `json:"id"`
	GPUType    string  `json:"gpu_type"`
	CostPerHr  float64 `json:"cost_per_hr"`
	DataCenter string  `json:"data_center"`
}

type runpodLaunchResponse struct {
	Pods []runpodPod `json:"pods"`
}

// Launch implements Provider.
func (p *RunPodProvider) Launch(ctx context.Context, count int, gpuClass string) ([]Instance, error) {
	body, err := json.Marshal(runpodLaunchRequest{Count: count, GPUType: gpuClass})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/pods", bytes.NewReader(body))
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

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("runpod launch returned %d: %s", resp.StatusCode, raw)
	}

	var launched runpodLaunchResponse
	if err := json.NewDecoder(resp.Body).Decode(&launched); err != nil {
		return nil, err
	}

	instances := make([]Instance, 0, len(launched.Pods))
	for _, pod := range launched.Pods {
		instances = append(instances, Instance{
			InstanceID: pod.ID,
			GPUClass:   pod.GPUType,
			HourlyCost: pod.CostPerHr,
			Region:     pod.DataCenter,
		})
	}

	logger.Log.Infow("runpod launch", "requested", count, "launched", len(instances), "gpu_class", gpuClass)
	return instances, nil
}

// Terminate implements Provider.
func (p *RunPodProvider) Terminate(ctx context.Context, instanceID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, p.baseURL+"/pods/"+instanceID, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("runpod terminate returned %d: %s", resp.StatusCode, raw)
	}
	return nil
}
