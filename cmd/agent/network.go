package main

import (
	"fmt"

	"github.com/vlachapelle/spikepaddle/agentrand"
	"github.com/vlachapelle/spikepaddle/config"
	"github.com/vlachapelle/spikepaddle/network"
)

// Default network topology, grounded on original_source/scripts/initialization.py's
// init_network: eight topographic sensory/afferent region pairs, a single
// internal region, and a forward/backward efferent pair.
const (
	topographicRegions = 8
	sensoryRegionSize  = 1
	afferentRegionSize = 4
	internalRegionSize = 8
	efferentRegionSize = 4
)

const (
	sensoryToAfferentAvg  = 0.75
	afferentToAfferentAvg = 0.05
	afferentToEfferentAvg = 0.025
	afferentToInternalAvg = 0.4
	afferentToSelfAvg     = 0.1
	efferentToAfferentAvg = 0.025
	efferentToEfferentAvg = 0.1
	efferentToInternalAvg = 0.4
	efferentToSelfAvg     = 0.05
	internalToAfferentAvg = 0.35
	internalToEfferentAvg = 0.35
	internalToSelfAvg     = 0.5
)

// buildNetwork assembles the default region layout and connectome,
// returning the sensory region names (for the signal translator) and the
// forward/backward efferent region names (for the motor controller).
func buildNetwork(cfg network.Config, rng agentrand.Source) (sensoryNames, motorNames []string, net *network.Network, err error) {
	sensoryNames = make([]string, topographicRegions)
	afferentNames := make([]string, topographicRegions)
	for i := 0; i < topographicRegions; i++ {
		sensoryNames[i] = fmt.Sprintf("s%d", i)
		afferentNames[i] = fmt.Sprintf("a%d", i)
	}
	internalNames := []string{"i0"}
	motorNames = []string{"e0", "e1"}

	var regions []*network.Region
	for _, name := range sensoryNames {
		r, rerr := network.NewRegion(name, sensoryRegionSize, network.External)
		if rerr != nil {
			return nil, nil, nil, rerr
		}
		regions = append(regions, r)
	}
	for _, name := range afferentNames {
		r, rerr := network.NewRegion(name, afferentRegionSize, network.Internal)
		if rerr != nil {
			return nil, nil, nil, rerr
		}
		regions = append(regions, r)
	}
	for _, name := range internalNames {
		r, rerr := network.NewRegion(name, internalRegionSize, network.Internal)
		if rerr != nil {
			return nil, nil, nil, rerr
		}
		regions = append(regions, r)
	}
	for _, name := range motorNames {
		r, rerr := network.NewRegion(name, efferentRegionSize, network.Internal)
		if rerr != nil {
			return nil, nil, nil, rerr
		}
		regions = append(regions, r)
	}

	sensoryToAfferent, err := network.FixedAverageTransmission(sensoryToAfferentAvg, rng)
	if err != nil {
		return nil, nil, nil, err
	}
	afferentToAfferent, err := network.FixedAverageTransmission(afferentToAfferentAvg, rng)
	if err != nil {
		return nil, nil, nil, err
	}
	afferentToEfferent, err := network.FixedAverageTransmission(afferentToEfferentAvg, rng)
	if err != nil {
		return nil, nil, nil, err
	}
	afferentToInternal, err := network.FixedAverageTransmission(afferentToInternalAvg, rng)
	if err != nil {
		return nil, nil, nil, err
	}
	afferentToSelf, err := network.SelfReferringFixedAverageTransmission(afferentToSelfAvg, rng)
	if err != nil {
		return nil, nil, nil, err
	}
	efferentToAfferent, err := network.FixedAverageTransmission(efferentToAfferentAvg, rng)
	if err != nil {
		return nil, nil, nil, err
	}
	efferentToEfferent, err := network.FixedAverageTransmission(efferentToEfferentAvg, rng)
	if err != nil {
		return nil, nil, nil, err
	}
	efferentToInternal, err := network.FixedAverageTransmission(efferentToInternalAvg, rng)
	if err != nil {
		return nil, nil, nil, err
	}
	efferentToSelf, err := network.SelfReferringFixedAverageTransmission(efferentToSelfAvg, rng)
	if err != nil {
		return nil, nil, nil, err
	}
	internalToAfferent, err := network.FixedAverageTransmission(internalToAfferentAvg, rng)
	if err != nil {
		return nil, nil, nil, err
	}
	internalToEfferent, err := network.FixedAverageTransmission(internalToEfferentAvg, rng)
	if err != nil {
		return nil, nil, nil, err
	}
	internalToSelf, err := network.SelfReferringFixedAverageTransmission(internalToSelfAvg, rng)
	if err != nil {
		return nil, nil, nil, err
	}

	connectome := network.Connectome{}
	for i, name := range sensoryNames {
		connectome[name] = map[string]network.GraphGenerator{afferentNames[i]: sensoryToAfferent}
	}
	for _, name := range afferentNames {
		targets := map[string]network.GraphGenerator{}
		for _, other := range afferentNames {
			if other == name {
				targets[other] = afferentToSelf
			} else {
				targets[other] = afferentToAfferent
			}
		}
		for _, other := range internalNames {
			targets[other] = afferentToInternal
		}
		for _, other := range motorNames {
			targets[other] = afferentToEfferent
		}
		connectome[name] = targets
	}
	for _, name := range motorNames {
		targets := map[string]network.GraphGenerator{}
		for _, other := range afferentNames {
			targets[other] = efferentToAfferent
		}
		for _, other := range internalNames {
			targets[other] = efferentToInternal
		}
		for _, other := range motorNames {
			if other == name {
				targets[other] = efferentToSelf
			} else {
				targets[other] = efferentToEfferent
			}
		}
		connectome[name] = targets
	}
	for _, name := range internalNames {
		targets := map[string]network.GraphGenerator{}
		for _, other := range afferentNames {
			targets[other] = internalToAfferent
		}
		for _, other := range motorNames {
			targets[other] = internalToEfferent
		}
		targets[name] = internalToSelf
		connectome[name] = targets
	}

	net, err = network.New(regions, connectome, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return sensoryNames, motorNames, net, nil
}

// networkConfig converts the loaded YAML configuration to network.Config,
// applying any CLI --coef override to the plasticity hyperparameters.
func networkConfig(cfg *config.Config, coef *coefOverride) network.Config {
	nc := network.Config{
		RecoveryStateEnergyRatio: cfg.Network.RecoveryStateEnergyRatio,
		StateHistorySize:         cfg.Network.StateHistorySize,
		DecayCoefficient:         cfg.Network.DecayCoefficient,
		ExplorationRate:          cfg.Network.ExplorationRate,
		StrengtheningExponent:    cfg.Network.StrengtheningExponent,
		RewardPeriod:             cfg.Network.RewardPeriod,
		RewardSignalPeriod:       cfg.Network.RewardSignalPeriod,
		PunishPeriod:             cfg.Network.PunishPeriod,
		PunishMinSignalPeriod:    cfg.Network.PunishMinSignalPeriod,
		PunishMaxSignalPeriod:    cfg.Network.PunishMaxSignalPeriod,
		KValue:                   cfg.Network.KValue,
	}
	if coef != nil {
		nc.DecayCoefficient = coef.decay
		nc.ExplorationRate = coef.exploration
		nc.StrengtheningExponent = coef.strengthening
	}
	return nc
}
