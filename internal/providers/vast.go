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

// VastProvider talks to the Vast.ai instances API. Vast is the cheapest
// vendor and first in the preference order.
type VastProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewVastProvider creates a Vast.ai adapter.
func NewVastProvider(baseURL, apiKey string) *VastProvider {
	return &VastProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Name implements Provider.
func (p *VastProvider) Name() string { return "vast" }

type vastLaunchRequest struct {
	NumInstances int    `json:"num_instances"`
	GPUName      string `json:"gpu_name"`
}

type vastInstance struct {
	ID        string  `json:"id"`
	GPUName   string  `json:"gpu_name"`
	DPHTotal  float64 `json:"dph_total"` // dollars per hour
	GeoRegion string  `json:"geolocation"`
}

type vastLaunchResponse struct {
	Instances []vastInstance `json:"instances"`
}

// Launch implements Provider.
func (p *VastProvider) Launch(ctx context.Context, count int, gpuClass string) ([]Instance, error) {
	body, err := json.Marshal(vastLaunchRequest{NumInstances: count, GPUName: gpuClass})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/instances", bytes.NewReader(body))
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
		return nil, fmt.Errorf("vast launch returned %d: %s", resp.StatusCode, raw)
	}

	var launched vastLaunchResponse
	if err := json.NewDecoder(resp.Body).Decode(&launched); err != nil {
		return nil, err
	}

	instances := make([]Instance, 0, len(launched.Instances))
	for _, inst := range launched.Instances {
		instances = append(instances, Instance{
			InstanceID: inst.ID,
			GPUClass:   inst.GPUName,
			HourlyCost: inst.DPHTotal,
			Region:     inst.GeoRegion,
		})
	}

	logger.Log.Infow("vast launch", "requested", count, "launched", len(instances), "gpu_class", gpuClass)
	return instances, nil
}

// Terminate implements Provider.
func (p *VastProvider) Terminate(ctx context.Context, instanceID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, p.baseURL+"/instances/"+instanceID, nil)
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
		return fmt.Errorf("vast terminate returned %d: %s", resp.StatusCode, raw)
	}
	return nil
}
