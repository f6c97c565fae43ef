// Package video decodes cube faces from video files with ffmpeg.
package video

import (
	"errors"
	"fmt"
	"image"

	"cube-mapping/internal/texture"

	"github.com/zergon321/reisen"
)

// ErrNoVideoStream is returned for media without a video stream.
var ErrNoVideoStream = errors.New("no video stream")

// Source decodes the first video stream of a media file frame by frame.
// Once the file runs out of packets it stays exhausted.
type Source struct {
	path      string
	media     *reisen.Media
	stream    *reisen.VideoStream
	exhausted bool
	closed    bool
}

// Open prepares path for decoding.
func Open(path string) (*Source, error) {
	media, err := reisen.NewMedia(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open video %s: %w", path, err)
	}

	if err := media.OpenDecode(); err != nil {
		media.Close()
		return nil, fmt.Errorf("failed to start decoding %s: %w", path, err)
	}

	streams := media.VideoStreams()
	if len(streams) == 0 {
		media.CloseDecode()
		media.Close()
		return nil, fmt.Errorf("%s: %w", path, ErrNoVideoStream)
	}

	stream := streams[0]
	if err := stream.Open(); err != nil {
		media.CloseDecode()
		media.Close()
		return nil, fmt.Errorf("failed to open video stream of %s: %w", path, err)
	}

	return &Source{path: path, media: media, stream: stream}, nil
}

// OpenCube opens <dir>/<face><ext> videos for every face.
func OpenCube(dir, ext string) (*texture.Cube, error) {
	return texture.OpenWith(texture.FacePaths(dir, ext), func(path string) (texture.Source, error) {
		return Open(path)
	})
}

// NextFrame reads packets until the next frame of the video stream decodes.
// Packets of other streams (audio, subtitles) are dropped.
func (s *Source) NextFrame() (image.Image, bool, error) {
	if s.exhausted || s.closed {
		return nil, false, nil
	}

	for {
		packet, gotPacket, err := s.media.ReadPacket()
		if err != nil {
			return nil, false, fmt.Errorf("failed to read packet from %s: %w", s.path, err)
		}
		if !gotPacket {
			s.exhausted = true
			return nil, false, nil
		}
		if !isStreamPacket(packet.Type(), packet.StreamIndex(), s.stream.Index()) {
			continue
		}

		frame, gotFrame, err := s.stream.ReadVideoFrame()
		if err != nil {
			return nil, false, fmt.Errorf("failed to decode frame from %s: %w", s.path, err)
		}
		if !gotFrame || frame == nil {
			continue
		}
		return frame.Image(), true, nil
	}
}

// Close stops decoding and releases the media.
func (s *Source) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if err := s.stream.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := s.media.CloseDecode(); err != nil {
		errs = append(errs, err)
	}
	s.media.Close()
	return errors.Join(errs...)
}

// isStreamPacket reports whether a packet belongs to the decoded video stream.
func isStreamPacket(typ reisen.StreamType, index, want int) bool {
	return typ == reisen.StreamVideo && index == want
}
